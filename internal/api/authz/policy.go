// Package authz holds the request authorization policy as an explicit,
// ordered rule table. Evaluation is a pure function of (method, path, role)
// so the policy can be tested without any transport in the loop.
package authz

import (
	"strings"

	"github.com/coffeeshop/backoffice/internal/core/domain"
)

// Verdict is the outcome of evaluating a request against the policy.
type Verdict int

const (
	// VerdictAllow lets the request through to its handler.
	VerdictAllow Verdict = iota
	// VerdictUnauthenticated rejects an anonymous request that needs a
	// principal (HTTP 401, or a redirect to the login page).
	VerdictUnauthenticated
	// VerdictForbidden rejects an authenticated request whose role does
	// not satisfy the matched rule (HTTP 403).
	VerdictForbidden
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictUnauthenticated:
		return "unauthenticated"
	case VerdictForbidden:
		return "forbidden"
	}
	return "unknown"
}

// rule maps a set of path patterns and an optional method set to a role
// requirement. A nil roles slice means public; an empty non-nil slice is
// not used. A nil methods set means the rule applies to every method.
type rule struct {
	patterns []string
	methods  map[string]struct{}
	public   bool
	roles    []domain.Role
}

func methodSet(methods ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(methods))
	for _, v := range methods {
		m[v] = struct{}{}
	}
	return m
}

var readMethods = methodSet("GET", "HEAD")
var writeMethods = methodSet("POST", "PUT", "PATCH", "DELETE")

// Policy is an ordered rule list; the first matching rule wins and
// unmatched requests require authentication with any role.
type Policy struct {
	rules []rule
}

// Default returns the back-office policy:
//
//  1. Login flow, auth probes, static assets, and ops endpoints are public.
//  2. The admin dashboard page is ADMIN only.
//  3. The menu page and coffee reads are ADMIN or STAFF.
//  4. Coffee writes are ADMIN only.
//  5. Everything else needs some authenticated role.
func Default() *Policy {
	return &Policy{rules: []rule{
		{
			patterns: []string{
				"/", "/login", "/login.html",
				"/api/auth/login", "/api/auth/logout", "/api/auth/user",
				"/css/**", "/js/**", "/images/**", "/favicon.ico",
				"/health", "/health/ready", "/metrics", "/swagger/**",
			},
			public: true,
		},
		{
			patterns: []string{"/index.html", "/admin"},
			roles:    []domain.Role{domain.RoleAdmin},
		},
		{
			patterns: []string{"/menu.html", "/menu"},
			roles:    []domain.Role{domain.RoleAdmin, domain.RoleStaff},
		},
		{
			patterns: []string{"/api/coffees", "/api/coffees/**"},
			methods:  readMethods,
			roles:    []domain.Role{domain.RoleAdmin, domain.RoleStaff},
		},
		{
			patterns: []string{"/api/coffees", "/api/coffees/**"},
			methods:  writeMethods,
			roles:    []domain.Role{domain.RoleAdmin},
		},
	}}
}

// Evaluate resolves the verdict for a request. role is the authenticated
// principal's role, or "" for an anonymous request.
func (p *Policy) Evaluate(method, path string, role domain.Role) Verdict {
	for _, r := range p.rules {
		if !r.matches(method, path) {
			continue
		}
		if r.public {
			return VerdictAllow
		}
		return verdictForRoles(r.roles, role)
	}
	// Unmatched requests default to "authenticated, any role".
	if role == "" {
		return VerdictUnauthenticated
	}
	return VerdictAllow
}

func (r rule) matches(method, path string) bool {
	if r.methods != nil {
		if _, ok := r.methods[method]; !ok {
			return false
		}
	}
	for _, pattern := range r.patterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

func verdictForRoles(required []domain.Role, role domain.Role) Verdict {
	if role == "" {
		return VerdictUnauthenticated
	}
	for _, want := range required {
		if role == want {
			return VerdictAllow
		}
	}
	return VerdictForbidden
}

// matchPattern supports exact paths and trailing "/**" prefix patterns.
// "/api/coffees/**" matches "/api/coffees/abc" and deeper, but not
// "/api/coffees" itself, mirroring servlet ant-matcher semantics.
func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}
