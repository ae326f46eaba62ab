package main

import (
	"fmt"

	"github.com/MASEZHAO/apollo/pkg/config"
	"github.com/MASEZHAO/apollo/pkg/db"
	"github.com/MASEZHAO/apollo/pkg/rbac"
	gormstore "github.com/MASEZHAO/apollo/pkg/rbac/store/gorm"
)

// newService wires the RBAC service to the configured database and
// superadmin allowlist.
func newService() (*rbac.Service, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return rbac.NewService(gormstore.NewStore(database), config.NewProvider(cfg)), nil
}
