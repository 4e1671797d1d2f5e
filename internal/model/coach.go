package model

import "time"

// Account roles carried in the access token.  Coaches may change team
// data; viewers only read lineups.
const (
    RoleCoach  = "COACH"
    RoleViewer = "VIEWER"
)

// Coach represents an account record as stored in the `coaches` table.
// Each field corresponds to a column.  The json tags are omitted because
// the struct is used internally by the repository layer; handlers define
// their own response types.
//
// Fields:
//  ID           – primary key identifier of the account.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – COACH or VIEWER.
//  IsActive     – whether the account may log in.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Coach struct {
    ID           uint64    // coaches.id
    Email        string    // coaches.email
    PasswordHash string    // coaches.password_hash
    Role         string    // coaches.role
    IsActive     bool      // coaches.is_active
    CreatedAt    time.Time // coaches.created_at
    UpdatedAt    time.Time // coaches.updated_at
}
