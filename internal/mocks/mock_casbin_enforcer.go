package mocks

import "github.com/shreyanshTechz/attendance-backend/domain"

// MockCasbinEnforcer implements domain.CasbinEnforcer interface for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
}

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{}
}

func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	// Default behavior: added
	return true, nil
}

func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	// Default behavior: removed
	return true, nil
}

func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	// Default behavior: allow
	return true, nil
}

func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	// Default behavior: empty policy set
	return nil, nil
}

func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)
