package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock repository for testing
type mockAuthRepository struct {
	credentials   map[string]*Credential // username -> credential
	employeeRoles map[int64]string       // emp_id -> role (active employees only)
	userEmpIDs    map[int64]bool         // emp_id -> has user
	usernames     map[string]bool
	createdUsers  []string
	returnError   bool
	errorToReturn error
}

func newMockAuthRepository() *mockAuthRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	return &mockAuthRepository{
		credentials: map[string]*Credential{
			"arif": {
				UserID:         1,
				EmpID:          10,
				Username:       "arif",
				PasswordHash:   string(hashedPassword),
				Role:           "admin",
				EmployeeStatus: "active",
			},
			"sinta": {
				UserID:         2,
				EmpID:          20,
				Username:       "sinta",
				PasswordHash:   string(hashedPassword),
				Role:           "staff",
				EmployeeStatus: "active",
			},
			"budi": {
				UserID:         3,
				EmpID:          30,
				Username:       "budi",
				PasswordHash:   string(hashedPassword),
				Role:           "staff",
				EmployeeStatus: "inactive",
			},
			"ghost": {
				UserID:         4,
				EmpID:          40,
				Username:       "ghost",
				PasswordHash:   string(hashedPassword),
				Role:           "superuser",
				EmployeeStatus: "active",
			},
		},
		employeeRoles: map[int64]string{
			50: "staff",
			10: "admin",
			20: "staff",
		},
		userEmpIDs: map[int64]bool{10: true, 20: true, 30: true, 40: true},
		usernames:  map[string]bool{"arif": true, "sinta": true, "budi": true, "ghost": true},
	}
}

func (m *mockAuthRepository) GetCredentialByUsername(username string) (*Credential, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if cred, ok := m.credentials[username]; ok {
		return cred, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAuthRepository) GetActiveEmployeeRole(empID int64) (string, error) {
	if m.returnError {
		return "", m.errorToReturn
	}
	return m.employeeRoles[empID], nil
}

func (m *mockAuthRepository) UserExistsForEmployee(empID int64) (bool, error) {
	if m.returnError {
		return false, m.errorToReturn
	}
	return m.userEmpIDs[empID], nil
}

func (m *mockAuthRepository) UsernameTaken(username string) (bool, error) {
	if m.returnError {
		return false, m.errorToReturn
	}
	return m.usernames[username], nil
}

func (m *mockAuthRepository) CreateUser(empID int64, username, passwordHash, role string) (int64, error) {
	if m.returnError {
		return 0, m.errorToReturn
	}
	m.createdUsers = append(m.createdUsers, username)
	m.userEmpIDs[empID] = true
	m.usernames[username] = true
	return int64(len(m.createdUsers)) + 100, nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockAuthRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockAuthRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", 12*time.Hour)
		testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, nil, testLogger)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a session with a token and the admin dashboard redirect", func() {
				dto := LoginDTO{Username: "arif", Password: "correct_password"}

				session, err := service.Authenticate(dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(session.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(session.Role).To(gomega.Equal("admin"))
				gomega.Expect(session.EmpID).To(gomega.Equal(int64(10)))
				gomega.Expect(session.Redirect).To(gomega.Equal("/admin/dashboard"))
			})

			ginkgo.It("should redirect staff to the staff dashboard", func() {
				dto := LoginDTO{Username: "sinta", Password: "correct_password"}

				session, err := service.Authenticate(dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(session.Role).To(gomega.Equal("staff"))
				gomega.Expect(session.Redirect).To(gomega.Equal("/staff_dashboard"))
			})

			ginkgo.It("should issue a token whose claims identify the principal", func() {
				dto := LoginDTO{Username: "sinta", Password: "correct_password"}

				session, err := service.Authenticate(dto)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(session.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(int64(2)))
				gomega.Expect(claims.Username).To(gomega.Equal("sinta"))
				gomega.Expect(claims.Role).To(gomega.Equal("staff"))
				gomega.Expect(claims.EmpID).To(gomega.Equal(int64(20)))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return the generic error for an unknown username", func() {
				dto := LoginDTO{Username: "nobody", Password: "any_password"}

				session, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(session.Token).To(gomega.BeEmpty())
			})

			ginkgo.It("should return the generic error for a wrong password", func() {
				dto := LoginDTO{Username: "arif", Password: "wrong_password"}

				session, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(session.Token).To(gomega.BeEmpty())
			})

			ginkgo.It("should return the same generic error for an inactive employee", func() {
				dto := LoginDTO{Username: "budi", Password: "correct_password"}

				session, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(session.Token).To(gomega.BeEmpty())
			})

			ginkgo.It("should return the generic error when the repository fails", func() {
				mockRepo.returnError = true
				mockRepo.errorToReturn = errors.New("database error")
				dto := LoginDTO{Username: "arif", Password: "correct_password"}

				_, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the stored role is not recognized", func() {
			ginkgo.It("should surface the configuration problem separately", func() {
				dto := LoginDTO{Username: "ghost", Password: "correct_password"}

				session, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.Equal(ErrUnknownRole))
				gomega.Expect(session.Token).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should reject an empty username", func() {
				dto := LoginDTO{Username: "", Password: "password"}

				_, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("username is required"))
			})

			ginkgo.It("should reject an empty password", func() {
				dto := LoginDTO{Username: "arif", Password: ""}

				_, err := service.Authenticate(dto)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("password is required"))
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.Context("when the employee is eligible", func() {
			ginkgo.It("should create the user with the employee's role", func() {
				dto := RegisterDTO{EmpID: 50, Username: "newstaff", Password: "secret"}

				err := service.Register(dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(mockRepo.createdUsers).To(gomega.ContainElement("newstaff"))
			})
		})

		ginkgo.Context("when the employee is missing or inactive", func() {
			ginkgo.It("should reject with the eligibility error", func() {
				dto := RegisterDTO{EmpID: 999, Username: "someone", Password: "secret"}

				err := service.Register(dto)

				gomega.Expect(err).To(gomega.Equal(ErrEmployeeNotEligible))
				gomega.Expect(mockRepo.createdUsers).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when an account already exists for the employee", func() {
			ginkgo.It("should reject with the account-exists error", func() {
				dto := RegisterDTO{EmpID: 20, Username: "sinta2", Password: "secret"}

				err := service.Register(dto)

				gomega.Expect(err).To(gomega.Equal(ErrAccountExists))
				gomega.Expect(mockRepo.createdUsers).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when the username is taken", func() {
			ginkgo.It("should reject with the username-taken error", func() {
				dto := RegisterDTO{EmpID: 50, Username: "arif", Password: "secret"}

				err := service.Register(dto)

				gomega.Expect(err).To(gomega.Equal(ErrUsernameTaken))
				gomega.Expect(mockRepo.createdUsers).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should reject a missing employee ID", func() {
				dto := RegisterDTO{Username: "someone", Password: "secret"}

				err := service.Register(dto)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("emp_id is required"))
			})
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject a token signed with another secret", func() {
			otherGen := NewJWTTokenGenerator("other-secret", time.Hour)
			otherService := NewService(mockRepo, otherGen, bcrypt.MinCost, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

			session, err := otherService.Authenticate(LoginDTO{Username: "arif", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(session.Token)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject garbage input", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})

var _ = ginkgo.Describe("ParseRole", func() {
	ginkgo.It("should accept the two known roles", func() {
		role, err := ParseRole("admin")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(role).To(gomega.Equal(RoleAdmin))

		role, err = ParseRole("staff")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(role).To(gomega.Equal(RoleStaff))
	})

	ginkgo.It("should reject anything else", func() {
		_, err := ParseRole("superuser")
		gomega.Expect(err).To(gomega.Equal(ErrUnknownRole))

		_, err = ParseRole("")
		gomega.Expect(err).To(gomega.Equal(ErrUnknownRole))
	})
})
