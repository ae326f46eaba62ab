package model

// UserInfo is the query-result projection of an assigned user. It is built
// transiently from user_roles rows and never stored.
type UserInfo struct {
	UserID string `json:"userId"`
}
