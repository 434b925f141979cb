package audit

// Actions recorded for sensitive state changes.
const (
	ActionUserRegistered = "UserRegistered"
	ActionAccountDeleted = "AccountDeleted"
	ActionSkillAdded     = "SkillAdded"
	ActionProofVerified  = "ProofVerified"
	ActionPostViewed     = "PostViewed"
)

const ResultSuccess = "Success"

// Entry is an immutable audit row. ActorAccountID is nil for anonymous
// actions such as post views.
type Entry struct {
	ActorAccountID *int64
	Action         string
	EntityType     string
	EntityID       int64
	Details        any
	Result         string
}
