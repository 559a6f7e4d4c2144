// Package policy holds the access control table consulted before every
// request handler runs. Each rule maps a resource and action to either
// public access, any authenticated caller, or a set of roles, and every
// allowed decision carries the scope the handler must restrict itself to.
package policy

import (
	"errors"
	"fmt"

	"github.com/osa911/clipdesk/internal/models"
)

// Resource names a protected entity.
type Resource string

// Action names an operation on a resource.
type Action string

const (
	ResourceSession     Resource = "session"
	ResourceUser        Resource = "user"
	ResourceApplication Resource = "application"
	ResourceTeam        Resource = "team"
	ResourceCampaign    Resource = "campaign"
	ResourceClip        Resource = "clip"
	ResourceAnalytics   Resource = "analytics"
	ResourceMessage     Resource = "message"
	ResourceDashboard   Resource = "dashboard"
)

const (
	ActionCreate        Action = "create"
	ActionDelete        Action = "delete"
	ActionRead          Action = "read"
	ActionList          Action = "list"
	ActionUpdateStatus  Action = "update_status"
	ActionResubmit      Action = "resubmit"
	ActionAddMember     Action = "add_member"
	ActionListMembers   Action = "list_members"
	ActionListCampaigns Action = "list_campaigns"
	ActionListClips     Action = "list_clips"
	ActionReadAnalytics Action = "read_analytics"
	ActionRecord        Action = "record"
	ActionClientSummary Action = "client_summary"
	ActionMarkRead      Action = "mark_read"
)

// Scope restricts what an allowed caller may see or touch.
type Scope string

const (
	// ScopePublic is granted to unauthenticated callers of public rules.
	ScopePublic Scope = "public"
	// ScopeOwn limits the caller to rows they created or that address them.
	ScopeOwn Scope = "own"
	// ScopeClient limits the caller to rows owned through their client id.
	ScopeClient Scope = "client"
	// ScopeManaged limits the caller to teams they manage.
	ScopeManaged Scope = "managed"
	// ScopePending limits the caller to clips awaiting review, across all teams.
	ScopePending Scope = "pending"
	// ScopeAll places no restriction on the caller.
	ScopeAll Scope = "all"
)

var (
	// ErrUnauthenticated is returned when a rule requires a caller and there is none.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrDenied is returned when the caller's role is not allowed.
	ErrDenied = errors.New("unauthorized")
)

// Rule describes who may perform one action on one resource.
type Rule struct {
	Public bool

	// Authenticated grants every signed-in caller this scope when set.
	Authenticated Scope
	Roles         Grants
}

// Subject is the caller a decision is made for.
type Subject struct {
	UserID string
	Role   models.Role
}

// Decision is the outcome of an allowed authorization check.
type Decision struct {
	Subject *Subject
	Scope   Scope
}

// CallerID returns the authenticated caller's id, or "" for public decisions.
func (d Decision) CallerID() string {
	if d.Subject == nil {
		return ""
	}
	return d.Subject.UserID
}

type key struct {
	resource Resource
	action   Action
}

// Policy is an immutable lookup table of rules. Pairs without a rule are denied.
type Policy struct {
	rules map[key]Rule
}

// New builds a policy from an explicit rule set.
func New(rules map[Resource]map[Action]Rule) *Policy {
	p := &Policy{rules: make(map[key]Rule)}
	for res, actions := range rules {
		for act, rule := range actions {
			p.rules[key{res, act}] = rule
		}
	}
	return p
}

// Rule returns the rule registered for a resource and action.
func (p *Policy) Rule(resource Resource, action Action) (Rule, bool) {
	r, ok := p.rules[key{resource, action}]
	return r, ok
}

// Authorize decides whether subject may perform action on resource.
// A nil subject is an unauthenticated caller.
func (p *Policy) Authorize(subject *Subject, resource Resource, action Action) (Decision, error) {
	rule, ok := p.rules[key{resource, action}]
	if !ok {
		return Decision{}, fmt.Errorf("%w: no rule for %s:%s", ErrDenied, resource, action)
	}
	if rule.Public {
		scope := ScopePublic
		if subject != nil {
			scope = ScopeOwn
		}
		return Decision{Subject: subject, Scope: scope}, nil
	}
	if subject == nil {
		return Decision{}, ErrUnauthenticated
	}
	if rule.Authenticated != "" {
		return Decision{Subject: subject, Scope: rule.Authenticated}, nil
	}
	if scope, ok := rule.Roles[subject.Role]; ok {
		return Decision{Subject: subject, Scope: scope}, nil
	}
	return Decision{}, fmt.Errorf("%w: role %q may not %s %s", ErrDenied, subject.Role, action, resource)
}

// Grants maps each allowed role to the scope it is granted.
type Grants map[models.Role]Scope

var reviewers = Grants{models.RoleManager: ScopeAll, models.RoleAdmin: ScopeAll}

// Default returns the rule table the API is served with.
//
// Managers are trusted uniformly: they see every pending clip and may
// review any clip or team, not only the teams assigned to them.
func Default() *Policy {
	return New(map[Resource]map[Action]Rule{
		ResourceSession: {
			ActionCreate: {Public: true},
			ActionDelete: {Authenticated: ScopeOwn},
		},
		ResourceUser: {
			ActionRead: {Authenticated: ScopeOwn},
		},
		ResourceApplication: {
			ActionCreate:       {Public: true},
			ActionList:         {Roles: reviewers},
			ActionUpdateStatus: {Roles: reviewers},
		},
		ResourceTeam: {
			ActionCreate:        {Authenticated: ScopeOwn},
			ActionList:          {Roles: Grants{models.RoleClient: ScopeClient, models.RoleManager: ScopeManaged}},
			ActionListMembers:   {Roles: Grants{models.RoleClient: ScopeClient, models.RoleManager: ScopeAll, models.RoleAdmin: ScopeAll}},
			ActionAddMember:     {Roles: reviewers},
			ActionListCampaigns: {Roles: Grants{models.RoleClient: ScopeClient, models.RoleManager: ScopeAll, models.RoleAdmin: ScopeAll}},
		},
		ResourceCampaign: {
			ActionCreate:    {Authenticated: ScopeOwn},
			ActionList:      {Roles: Grants{models.RoleClient: ScopeClient}},
			ActionListClips: {Roles: Grants{models.RoleClient: ScopeClient, models.RoleManager: ScopeAll, models.RoleAdmin: ScopeAll}},
		},
		ResourceClip: {
			ActionCreate:        {Authenticated: ScopeOwn},
			ActionList:          {Roles: Grants{models.RoleClipper: ScopeOwn, models.RoleManager: ScopePending}},
			ActionUpdateStatus:  {Roles: reviewers},
			ActionResubmit:      {Roles: Grants{models.RoleClipper: ScopeOwn}},
			ActionReadAnalytics: {Roles: Grants{models.RoleClient: ScopeClient, models.RoleManager: ScopeAll, models.RoleAdmin: ScopeAll}},
			ActionRecord:        {Roles: reviewers},
		},
		ResourceAnalytics: {
			ActionClientSummary: {Roles: Grants{models.RoleClient: ScopeClient}},
		},
		ResourceMessage: {
			ActionCreate:   {Authenticated: ScopeOwn},
			ActionList:     {Authenticated: ScopeOwn},
			ActionMarkRead: {Authenticated: ScopeOwn},
		},
		ResourceDashboard: {
			ActionRead: {Roles: Grants{
				models.RoleClient:  ScopeClient,
				models.RoleClipper: ScopeOwn,
				models.RoleManager: ScopeManaged,
				models.RoleAdmin:   ScopeAll,
			}},
		},
	})
}
