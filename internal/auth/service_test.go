package auth

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/uniteam/uniteam-backend/config"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[uint]User
	nextID  uint
	admins  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}, byID: map[uint]User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	r.byID[user.ID] = *user
	if user.IsAdmin {
		r.admins++
	}
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(userID uint) (User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByGroupID(groupID uint) ([]User, error) { return nil, nil }
func (r *fakeUserRepo) FindAll() ([]User, error)                   { return nil, nil }
func (r *fakeUserRepo) FindByIDs(ids []uint) ([]User, error)       { return nil, nil }
func (r *fakeUserRepo) Update(user *User) error                    { return nil }
func (r *fakeUserRepo) CountAdmins() (int64, error)                { return r.admins, nil }

type recordingMailer struct {
	welcomes []string
	err      error
}

func (m *recordingMailer) SendWelcome(email, firstName, tempPassword string) error {
	if m.err != nil {
		return m.err
	}
	m.welcomes = append(m.welcomes, email)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:    "access-secret",
		JWTRefreshSecret:   "refresh-secret",
		JWTAccessTTLHours:  1,
		JWTRefreshTTLHours: 24,
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, admin bool) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	u := &User{Email: email, PasswordHash: string(hash), FirstName: "Alice", LastName: "Martin", IsAdmin: admin}
	assert.NoError(t, repo.Create(u))
	return u
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@uniteam.fr", "s3cret", false)
	svc := NewService(repo, nil, testConfig())

	pair, user, err := svc.Login(LoginInput{Email: "alice@uniteam.fr", Password: "s3cret"})
	assert.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "alice@uniteam.fr", user.Email)

	// access token carries the identity claims
	token, err := jwt.Parse(pair.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("access-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, "alice@uniteam.fr", claims["sub"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestLogin_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@uniteam.fr", "s3cret", false)
	svc := NewService(repo, nil, testConfig())

	_, _, err := svc.Login(LoginInput{Email: "  Alice@UniTeam.fr ", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestLogin_WrongCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@uniteam.fr", "s3cret", false)
	svc := NewService(repo, nil, testConfig())

	// same message either way, the caller cannot probe which emails exist
	_, _, err := svc.Login(LoginInput{Email: "alice@uniteam.fr", Password: "wrong"})
	assert.EqualError(t, err, "incorrect email or password")

	_, _, err = svc.Login(LoginInput{Email: "nobody@uniteam.fr", Password: "s3cret"})
	assert.EqualError(t, err, "incorrect email or password")
}

func TestRefresh(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@uniteam.fr", "s3cret", false)
	svc := NewService(repo, nil, testConfig())

	pair, _, err := svc.Login(LoginInput{Email: "alice@uniteam.fr", Password: "s3cret"})
	assert.NoError(t, err)

	access, err := svc.Refresh(pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)

	// an access token is not accepted as a refresh token
	_, err = svc.Refresh(pair.AccessToken)
	assert.EqualError(t, err, "invalid refresh token")

	_, err = svc.Refresh("not-a-token")
	assert.EqualError(t, err, "invalid refresh token")
}

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &recordingMailer{}
	svc := NewService(repo, mailer, testConfig())

	user, err := svc.CreateUser(CreateUserInput{
		Email: "Bob@UniTeam.fr", FirstName: "Bob", LastName: "Durand", GroupID: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "bob@uniteam.fr", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotEmpty(t, user.PasswordHash)
	assert.Equal(t, []string{"bob@uniteam.fr"}, mailer.welcomes)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "bob@uniteam.fr", "s3cret", false)
	svc := NewService(repo, nil, testConfig())

	_, err := svc.CreateUser(CreateUserInput{Email: "bob@uniteam.fr"})
	assert.EqualError(t, err, "email already registered")
}

func TestCreateUser_MailFailureStillCreates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &recordingMailer{err: errors.New("smtp down")}, testConfig())

	user, err := svc.CreateUser(CreateUserInput{Email: "bob@uniteam.fr"})
	assert.EqualError(t, err, "user created but welcome email failed")
	assert.NotNil(t, user)

	// the account exists and the admin can reset the password later
	_, findErr := repo.FindByEmail("bob@uniteam.fr")
	assert.NoError(t, findErr)
}

func TestEnsureAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nil, testConfig())

	assert.NoError(t, svc.EnsureAdmin("admin@uniteam.fr", "bootstrap", "Admin", "UniTeam", 1))
	u, err := repo.FindByEmail("admin@uniteam.fr")
	assert.NoError(t, err)
	assert.True(t, u.IsAdmin)

	// a second call with an admin present is a no-op
	assert.NoError(t, svc.EnsureAdmin("other@uniteam.fr", "bootstrap", "Other", "Admin", 1))
	_, err = repo.FindByEmail("other@uniteam.fr")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
