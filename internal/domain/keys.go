package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Actor is the authenticated identity performing an operation. Every
// role-gated usecase method takes the Actor explicitly; role checks never
// read ambient session state.
type Actor struct {
	UserID string
	Email  string
	Role   string
}

func (a Actor) IsRecruiter() bool { return a.Role == RoleRecruiter }

func (a Actor) IsEmployee() bool { return a.Role == RoleEmployee }
