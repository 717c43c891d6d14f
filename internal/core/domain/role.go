package domain

// Role names as used throughout authorization decisions. Tokens issued by
// older deployments may carry a "ROLE_" transport prefix; comparisons must
// normalize it away before matching against these names.
const (
	RoleClient  = "CLIENT"
	RoleAdvisor = "ADVISOR"
	RoleAdmin   = "ADMIN"
)

// Role identifiers as persisted on the user record.
const (
	RoleIDClient  int64 = 1
	RoleIDAdvisor int64 = 2
	RoleIDAdmin   int64 = 3
)

var roleNames = map[int64]string{
	RoleIDClient:  RoleClient,
	RoleIDAdvisor: RoleAdvisor,
	RoleIDAdmin:   RoleAdmin,
}

// RoleName returns the human-readable name for a role identifier. Unknown
// identifiers yield ("", false), never an error.
func RoleName(id int64) (string, bool) {
	name, ok := roleNames[id]
	return name, ok
}

// RoleDirectory returns a copy of the full id → name mapping.
func RoleDirectory() map[int64]string {
	dir := make(map[int64]string, len(roleNames))
	for id, name := range roleNames {
		dir[id] = name
	}
	return dir
}
