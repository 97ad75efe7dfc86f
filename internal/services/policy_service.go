package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// CasbinEnforcerWrapper adapts a real Casbin enforcer to domain.CasbinEnforcer.
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

// NewCasbinEnforcerWrapper wraps a Casbin enforcer
func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) RemovePolicy(params ...interface{}) (bool, error) {
	return w.enforcer.RemovePolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

func (w *CasbinEnforcerWrapper) SavePolicy() error {
	return w.enforcer.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService using Casbin
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: NewCasbinEnforcerWrapper(enforcer)}
}

// NewPolicyServiceWithEnforcer builds a policy service around the interface,
// used by tests.
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// AddPolicy implements domain.PolicyService
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	if _, err := p.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	if _, err := p.enforcer.RemovePolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return [][]string{}
	}
	return policies
}
