package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Enforcer is the subset of casbin used by the authorization middleware.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Policy rows for the two user roles. The employee role can read every
// resource and file leave requests; everything mutating or sensitive is
// admin only.
var policies = [][]string{
	{"employee", "employee", "read"},
	{"employee", "payroll", "read"},
	{"employee", "attendance", "read"},
	{"employee", "leave", "read"},
	{"employee", "leave", "create"},
	{"employee", "dashboard", "read"},

	{"admin", "employee", "create"},
	{"admin", "employee", "update"},
	{"admin", "employee", "delete"},
	{"admin", "payroll", "create"},
	{"admin", "payroll", "update"},
	{"admin", "payroll", "delete"},
	{"admin", "attendance", "create"},
	{"admin", "attendance", "update"},
	{"admin", "attendance", "delete"},
	{"admin", "leave", "update"},
	{"admin", "leave", "delete"},
	{"admin", "report", "read"},
}

// NewEnforcer builds the in-memory role enforcer. The policy set is fixed
// at startup; there is no per-tenant policy loading here.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	// admin inherits every employee permission
	if _, err := enforcer.AddGroupingPolicy("admin", "employee"); err != nil {
		return nil, err
	}

	return enforcer, nil
}
