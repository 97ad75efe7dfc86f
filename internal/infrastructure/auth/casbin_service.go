package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// CasbinService owns the enforcer backed by the GORM policy adapter.
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds an enforcer from the model file with policies
// persisted in the database.
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}
