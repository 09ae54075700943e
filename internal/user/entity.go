// Heftly | 2026
// entity.go

package user

// User is the single persistent entity. RecordID is the store's own
// key (generated, returned but never filtered on); ID is the
// client-supplied identifier every update/delete/trainer reference
// resolves against. CreatedAt is the enrollment date as DD.MM.YYYY
// text, stamped once at creation - the trainee's reporting calendar
// is computed from it downstream, so it must round-trip exactly.
type User struct {
	RecordID        string `db:"record_id"`
	ID              string `db:"id"`
	Name            string `db:"name"`
	Role            string `db:"role"`
	PasswordHash    string `db:"password_hash"`
	Department      string `db:"department"`
	AssignedTrainer string `db:"assigned_trainer"`
	CreatedAt       string `db:"created_at"`
}

const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
	RoleTrainee = "trainee"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTrainer || role == RoleTrainee
}

func (u *User) IsTrainee() bool {
	return u.Role == RoleTrainee
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

// CreatedAtLayout is the Go reference form of DD.MM.YYYY.
const CreatedAtLayout = "02.01.2006"
