package usecase

//go:generate mockgen -source=user_usecase.go -destination=../adapter/http/handlers/mocks/user_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"net/mail"
	"slices"
	"strings"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      entities.Role
}

// UserUpdate is an admin edit. Nil pointers are left unchanged.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Role      *entities.Role
	Active    *bool
}

// ProfileUpdate is a self edit. NewPassword requires CurrentPassword.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	CurrentPassword string
	NewPassword     string
}

type UserFilter struct {
	Role   entities.Role
	Active *bool
	Search string
	interfaces.PageQuery
}

type IUserUseCase interface {
	Create(ctx context.Context, actor access.Subject, in UserInput) (entities.User, error)
	List(ctx context.Context, actor access.Subject, f UserFilter) ([]entities.User, int, error)
	Get(ctx context.Context, actor access.Subject, id string) (entities.User, error)
	Update(ctx context.Context, actor access.Subject, id string, in UserUpdate) (entities.User, error)
	Deactivate(ctx context.Context, actor access.Subject, id string) error
	ResetPassword(ctx context.Context, actor access.Subject, id string, password string) error
	UpdateProfile(ctx context.Context, actor access.Subject, in ProfileUpdate) (entities.User, error)
	EnsureAdmin(ctx context.Context, in UserInput) (entities.User, bool, error)
}

type UserUseCase struct {
	users interfaces.IUserRepository
	now   func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(users interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{users: users, now: utcNow}
}

func (u *UserUseCase) Create(ctx context.Context, actor access.Subject, in UserInput) (entities.User, error) {
	if err := access.RequireAdmin(actor, "only admins can create users"); err != nil {
		return entities.User{}, err
	}
	return u.create(ctx, in)
}

func (u *UserUseCase) List(ctx context.Context, actor access.Subject, f UserFilter) ([]entities.User, int, error) {
	if err := access.RequireAdmin(actor, "only admins can list users"); err != nil {
		return nil, 0, err
	}
	all, err := u.users.List(ctx, f.Role)
	if err != nil {
		return nil, 0, err
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	matched := make([]entities.User, 0, len(all))
	for _, usr := range all {
		if f.Active != nil && usr.Active != *f.Active {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(usr.FullName()+" "+usr.Email), search) {
			continue
		}
		matched = append(matched, usr)
	}
	slices.SortFunc(matched, func(a, b entities.User) int { return b.CreatedAt.Compare(a.CreatedAt) })

	start, end := f.PageQuery.Normalize(interfaces.DefaultLimit).Window(len(matched))
	return matched[start:end], len(matched), nil
}

func (u *UserUseCase) Get(ctx context.Context, actor access.Subject, id string) (entities.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return entities.User{}, access.Deny("you can only view your own user")
	}
	return u.load(ctx, id)
}

func (u *UserUseCase) Update(ctx context.Context, actor access.Subject, id string, in UserUpdate) (entities.User, error) {
	if err := access.RequireAdmin(actor, "only admins can update users"); err != nil {
		return entities.User{}, err
	}
	usr, err := u.load(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return entities.User{}, err
		}
		if email != usr.Email {
			taken, err := u.users.GetByEmail(ctx, email)
			if err != nil {
				return entities.User{}, err
			}
			if taken.ID != "" {
				return entities.User{}, ErrDuplicateEmail
			}
			usr.Email = email
		}
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return entities.User{}, invalid("invalid role")
		}
		usr.Role = *in.Role
	}
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) != "" {
		usr.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) != "" {
		usr.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		usr.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Active != nil {
		usr.Active = *in.Active
	}
	usr.UpdatedAt = u.now()
	return u.users.Update(ctx, usr)
}

// Deactivate disables the account instead of deleting it. The last active admin cannot be
// deactivated.
func (u *UserUseCase) Deactivate(ctx context.Context, actor access.Subject, id string) error {
	if err := access.RequireAdmin(actor, "only admins can deactivate users"); err != nil {
		return err
	}
	usr, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if usr.Role == entities.RoleAdmin {
		admins, err := u.users.List(ctx, entities.RoleAdmin)
		if err != nil {
			return err
		}
		active := 0
		for _, a := range admins {
			if a.Active {
				active++
			}
		}
		if active <= 1 {
			return invalid("the last admin cannot be deactivated")
		}
	}
	usr.Active = false
	usr.UpdatedAt = u.now()
	if _, err := u.users.Update(ctx, usr); err != nil {
		return err
	}
	log.Printf("[user][usecase] deactivated id=%s by=%s", usr.ID, actor.ID)
	return nil
}

func (u *UserUseCase) ResetPassword(ctx context.Context, actor access.Subject, id string, password string) error {
	if err := access.RequireAdmin(actor, "only admins can reset passwords"); err != nil {
		return err
	}
	usr, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if usr.PasswordHash, err = hashPassword(password); err != nil {
		return err
	}
	usr.UpdatedAt = u.now()
	_, err = u.users.Update(ctx, usr)
	return err
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, actor access.Subject, in ProfileUpdate) (entities.User, error) {
	usr, err := u.load(ctx, actor.ID)
	if err != nil {
		return entities.User{}, err
	}
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) != "" {
		usr.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) != "" {
		usr.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		usr.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return entities.User{}, invalid("current password is required")
		}
		if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.CurrentPassword)) != nil {
			return entities.User{}, ErrInvalidCredentials
		}
		if usr.PasswordHash, err = hashPassword(in.NewPassword); err != nil {
			return entities.User{}, err
		}
	}
	usr.UpdatedAt = u.now()
	return u.users.Update(ctx, usr)
}

// EnsureAdmin creates the bootstrap admin from in when no admin exists yet. It reports
// whether a user was created.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, in UserInput) (entities.User, bool, error) {
	admins, err := u.users.List(ctx, entities.RoleAdmin)
	if err != nil {
		return entities.User{}, false, err
	}
	if len(admins) > 0 {
		return admins[0], false, nil
	}
	in.Role = entities.RoleAdmin
	usr, err := u.create(ctx, in)
	if err != nil {
		return entities.User{}, false, err
	}
	log.Printf("[user][usecase] seeded admin email=%s", usr.Email)
	return usr, true, nil
}

func (u *UserUseCase) create(ctx context.Context, in UserInput) (entities.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.User{}, err
	}
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return entities.User{}, invalid("first and last name are required")
	}
	if !in.Role.Valid() {
		return entities.User{}, invalid("invalid role")
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return entities.User{}, err
	}
	now := u.now()
	created, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.User{}, ErrDuplicateEmail
	}
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[user][usecase] created id=%s role=%s", created.ID, created.Role)
	return created, nil
}

func (u *UserUseCase) load(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidID
	}
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("a valid email is required")
	}
	return email, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", invalid("password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
