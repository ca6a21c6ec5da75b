package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/employee-portal/internal"
	"github.com/frahmantamala/employee-portal/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Fake service with scripted behavior
type fakeAuthService struct {
	session      Session
	loginErr     error
	registerErr  error
	claims       *Claims
	validateErr  error
	lastLogin    LoginDTO
	lastRegister RegisterDTO
}

func (f *fakeAuthService) Authenticate(dto LoginDTO) (Session, error) {
	f.lastLogin = dto
	return f.session, f.loginErr
}

func (f *fakeAuthService) Register(dto RegisterDTO) error {
	f.lastRegister = dto
	return f.registerErr
}

func (f *fakeAuthService) ValidateAccessToken(token string) (*Claims, error) {
	return f.claims, f.validateErr
}

func decodeFlash(rec *httptest.ResponseRecorder) transport.Flash {
	var body map[string]transport.Flash
	Expect(json.NewDecoder(rec.Body).Decode(&body)).To(Succeed())
	return body["flash"]
}

var _ = Describe("Auth Handler", func() {
	var (
		svc     *fakeAuthService
		handler *Handler
	)

	BeforeEach(func() {
		svc = &fakeAuthService{}
		handler = NewHandler(svc)
	})

	Describe("Login", func() {
		It("should return the session on success", func() {
			svc.session = Session{Token: "tok", Username: "arif", Role: "admin", EmpID: 10, Redirect: "/admin/dashboard"}
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"arif","password":"pw"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var session Session
			Expect(json.NewDecoder(rec.Body).Decode(&session)).To(Succeed())
			Expect(session.Token).To(Equal("tok"))
			Expect(session.Redirect).To(Equal("/admin/dashboard"))
		})

		It("should flash the generic message for bad credentials", func() {
			svc.loginErr = ErrInvalidCredentials
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"arif","password":"bad"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			flash := decodeFlash(rec)
			Expect(flash.Category).To(Equal("danger"))
			Expect(flash.Message).To(Equal("Invalid username or password"))
			Expect(flash.Redirect).To(Equal("/login"))
		})

		It("should flash the configuration message for an unknown role", func() {
			svc.loginErr = ErrUnknownRole
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"ghost","password":"pw"}`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(decodeFlash(rec).Message).To(Equal("Invalid role. Contact administrator."))
		})

		It("should reject an unreadable body", func() {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeFlash(rec).Message).To(Equal("All fields are required"))
		})
	})

	Describe("Register", func() {
		post := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"emp_id":50,"username":"new","password":"pw"}`))
			rec := httptest.NewRecorder()
			handler.Register(rec, req)
			return rec
		}

		It("should flash success and point at login", func() {
			rec := post()

			Expect(rec.Code).To(Equal(http.StatusCreated))
			flash := decodeFlash(rec)
			Expect(flash.Category).To(Equal("success"))
			Expect(flash.Message).To(Equal("Account created successfully"))
			Expect(flash.Redirect).To(Equal("/login"))
		})

		It("should map an ineligible employee to a warning", func() {
			svc.registerErr = ErrEmployeeNotEligible
			rec := post()

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			flash := decodeFlash(rec)
			Expect(flash.Message).To(Equal("Invalid or inactive Employee ID"))
			Expect(flash.Redirect).To(Equal("/register"))
		})

		It("should map an existing account to an informational conflict", func() {
			svc.registerErr = ErrAccountExists
			rec := post()

			Expect(rec.Code).To(Equal(http.StatusConflict))
			flash := decodeFlash(rec)
			Expect(flash.Category).To(Equal("info"))
			Expect(flash.Message).To(Equal("Account already exists for this Employee ID"))
			Expect(flash.Redirect).To(Equal("/login"))
		})

		It("should map a taken username to a conflict", func() {
			svc.registerErr = ErrUsernameTaken
			rec := post()

			Expect(rec.Code).To(Equal(http.StatusConflict))
			Expect(decodeFlash(rec).Message).To(Equal("Username already taken"))
		})

		It("should render a wrapped storage failure with its structured body", func() {
			svc.registerErr = internal.NewInternalError("could not create account", errors.New("db down"))
			rec := post()

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			var body internal.Response
			Expect(json.NewDecoder(rec.Body).Decode(&body)).To(Succeed())
			Expect(body.Error).NotTo(BeNil())
			Expect(body.Error.Code).To(Equal(internal.ErrCodeInternal))
			Expect(body.Error.Message).To(Equal("could not create account"))
		})
	})

	Describe("RequireAuth", func() {
		var next http.Handler
		var sawPrincipal *internal.Principal

		BeforeEach(func() {
			sawPrincipal = nil
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if p, ok := internal.PrincipalFromContext(r.Context()); ok {
					sawPrincipal = p
				}
				w.WriteHeader(http.StatusOK)
			})
		})

		It("should reject a request without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/staff_dashboard", nil)
			rec := httptest.NewRecorder()

			handler.RequireAuth(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeFlash(rec).Message).To(Equal("Please login first"))
			Expect(sawPrincipal).To(BeNil())
		})

		It("should attach the verified principal to the context", func() {
			svc.claims = &Claims{UserID: 2, Username: "sinta", Role: "staff", EmpID: 20}
			req := httptest.NewRequest(http.MethodGet, "/staff_dashboard", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()

			handler.RequireAuth(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(sawPrincipal).NotTo(BeNil())
			Expect(sawPrincipal.EmpID).To(Equal(int64(20)))
			Expect(sawPrincipal.Role).To(Equal("staff"))
		})

		It("should reject an invalid token", func() {
			svc.validateErr = ErrInvalidToken
			req := httptest.NewRequest(http.MethodGet, "/staff_dashboard", nil)
			req.Header.Set("Authorization", "Bearer bad-token")
			rec := httptest.NewRecorder()

			handler.RequireAuth(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("RequireAdmin", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		It("should turn away a staff principal", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			ctx := internal.ContextWithPrincipal(req.Context(), &internal.Principal{UserID: 2, Role: "staff", EmpID: 20})
			rec := httptest.NewRecorder()

			handler.RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(decodeFlash(rec).Message).To(Equal("Access denied!"))
		})

		It("should pass an admin principal through", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			ctx := internal.ContextWithPrincipal(req.Context(), &internal.Principal{UserID: 1, Role: "admin", EmpID: 10})
			rec := httptest.NewRecorder()

			handler.RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should reject when no principal is present", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
			rec := httptest.NewRecorder()

			handler.RequireAdmin(next).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
