package constants

// Role names as carried in the JWT "role" claim.
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// Default forbidden messages per gate.
const (
	ErrCandidateOnly = "Only candidates can access this resource"
	ErrRecruiterOnly = "Only recruiters can access this resource"
)
