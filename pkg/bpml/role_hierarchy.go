package bpml

import (
	"fmt"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// RoleHierarchyAnalyzer inspects a role hierarchy built from parent links:
// effective permissions and definition conflicts. It runs on validated
// models, so it treats unexpected shapes leniently.
type RoleHierarchyAnalyzer struct {
	roles map[string]*model.Role
	order []string
}

func NewRoleHierarchyAnalyzer(roles []model.Role) *RoleHierarchyAnalyzer {
	a := &RoleHierarchyAnalyzer{
		roles: make(map[string]*model.Role, len(roles)),
	}
	for i := range roles {
		r := &roles[i]
		if _, dup := a.roles[r.Name]; dup {
			continue
		}
		a.roles[r.Name] = r
		a.order = append(a.order, r.Name)
	}
	return a
}

// Children returns the direct children of a role in declaration order.
func (a *RoleHierarchyAnalyzer) Children(roleName string) []string {
	var children []string
	for _, name := range a.order {
		if a.roles[name].Parent == roleName {
			children = append(children, name)
		}
	}
	return children
}

// EffectivePermissions returns the role's own permissions plus everything
// inherited through the parent chain, deduplicated, in inheritance order.
// An unknown role yields nil.
func (a *RoleHierarchyAnalyzer) EffectivePermissions(roleName string) []string {
	role, ok := a.roles[roleName]
	if !ok {
		return nil
	}
	var permissions []string
	seen := make(map[string]struct{})
	add := func(perms []string) {
		for _, perm := range perms {
			if _, dup := seen[perm]; dup {
				continue
			}
			seen[perm] = struct{}{}
			permissions = append(permissions, perm)
		}
	}

	add(role.Permissions)
	visited := map[string]struct{}{roleName: {}}
	for parentName := role.Parent; parentName != ""; {
		if _, looped := visited[parentName]; looped {
			break
		}
		visited[parentName] = struct{}{}
		parent, ok := a.roles[parentName]
		if !ok {
			break
		}
		add(parent.Permissions)
		parentName = parent.Parent
	}
	return permissions
}

// RoleConflict describes a questionable spot in the role definitions.
type RoleConflict struct {
	Type        string   `json:"type"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	Description string   `json:"description"`
}

// FindRoleConflicts reports circular inheritance and permissions a role
// repeats although the parent already grants them.
func (a *RoleHierarchyAnalyzer) FindRoleConflicts() []RoleConflict {
	var conflicts []RoleConflict

	for _, name := range a.order {
		if a.hasCircularInheritance(name) {
			conflicts = append(conflicts, RoleConflict{
				Type:        "circular_inheritance",
				Role:        name,
				Description: fmt.Sprintf("role %s has circular inheritance", name),
			})
		}
	}

	for _, name := range a.order {
		role := a.roles[name]
		parent, ok := a.roles[role.Parent]
		if !ok {
			continue
		}
		parentPerms := make(map[string]struct{}, len(parent.Permissions))
		for _, perm := range parent.Permissions {
			parentPerms[perm] = struct{}{}
		}
		var duplicated []string
		for _, perm := range role.Permissions {
			if _, dup := parentPerms[perm]; dup {
				duplicated = append(duplicated, perm)
			}
		}
		if len(duplicated) > 0 {
			conflicts = append(conflicts, RoleConflict{
				Type:        "duplicate_permissions",
				Role:        name,
				Permissions: duplicated,
				Description: fmt.Sprintf("role %s has permissions already inherited from parent", name),
			})
		}
	}

	return conflicts
}

func (a *RoleHierarchyAnalyzer) hasCircularInheritance(roleName string) bool {
	visited := make(map[string]struct{})
	current := roleName
	for {
		if _, looped := visited[current]; looped {
			return true
		}
		visited[current] = struct{}{}
		role, ok := a.roles[current]
		if !ok || role.Parent == "" {
			return false
		}
		current = role.Parent
	}
}
