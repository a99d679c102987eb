package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/disiplinli/kocumnet-back/internal/config"
	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/email"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

const tokenLifetime = 7 * 24 * time.Hour

// MintToken signs the platform token carried as "Authorization: Token
// <value>". The jti claim lets logout revoke it early.
func MintToken(cfg *config.Config, u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"email":   u.Email,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Name   string `json:"user"`
	Role   string `json:"role"`
}

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=student coach"`
	CoachID  *uint  `json:"coach_id"`
}

// RegisterHandler godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  RegisterRequest  true  "Account info"
// @Success      200   {object} map[string]interface{}
// @Failure      400   {object} map[string]string
// @Router       /api/register/ [post]
func RegisterHandler(cfg *config.Config, sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if _, err := db.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bu e-posta adresi zaten kayıtlı"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		role := req.Role
		if role == "" {
			role = models.RoleStudent
		}

		u := models.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Name:         req.Name,
			Role:         role,
			CoachID:      req.CoachID,
		}
		if err := db.CreateUser(c.Request.Context(), &u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		sendVerification(c, sender, u.Email)

		signed, err := MintToken(cfg, &u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
			return
		}
		c.JSON(http.StatusOK, loginResponse{Token: signed, UserID: u.ID, Name: u.Name, Role: u.Role})
	}
}

// LoginRequest is the password login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler godoc
// @Summary      Login with e-mail and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "Credentials"
// @Success      200   {object} map[string]interface{}
// @Failure      401   {object} map[string]string
// @Router       /api/login/ [post]
func LoginHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		u, err := db.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta veya şifre hatalı"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "E-posta veya şifre hatalı"})
			return
		}

		signed, err := MintToken(cfg, u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
			return
		}
		c.JSON(http.StatusOK, loginResponse{Token: signed, UserID: u.ID, Name: u.Name, Role: u.Role})
	}
}

// LogoutHandler denylists the presented token until its expiry.
func LogoutHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := parseHeaderToken(cfg, c.GetHeader("Authorization"))
		if err == nil {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				jti, _ := claims["jti"].(string)
				if exp, err := claims.GetExpirationTime(); err == nil && jti != "" {
					_ = DenylistToken(c.Request.Context(), jti, time.Until(exp.Time))
				}
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Çıkış yapıldı"})
	}
}

// SendOTPRequest asks for a one-time login code.
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendOTPHandler mails a 6-digit code valid for 5 minutes.
func SendOTPHandler(sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if _, err := db.GetUserByEmail(c.Request.Context(), req.Email); err != nil {
			// Same answer for unknown addresses, no account probing.
			c.JSON(http.StatusOK, gin.H{"message": "Kod gönderildi"})
			return
		}

		code := newCode()
		if err := storeCode(c.Request.Context(), codeOTP, req.Email, code, codeTTL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kod gönderilemedi"})
			return
		}
		if err := sender.Send(req.Email, "KoçumNet giriş kodu",
			fmt.Sprintf("Giriş kodunuz: %s (5 dakika geçerli)", code)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kod gönderilemedi"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Kod gönderildi"})
	}
}

// VerifyOTPRequest exchanges a mailed code for a session token.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

func VerifyOTPHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		ok, err := consumeCode(c.Request.Context(), codeOTP, req.Email, req.Code)
		if err != nil || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kod hatalı veya süresi dolmuş"})
			return
		}

		u, err := db.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kod hatalı veya süresi dolmuş"})
			return
		}

		signed, err := MintToken(cfg, u)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
			return
		}
		c.JSON(http.StatusOK, loginResponse{Token: signed, UserID: u.ID, Name: u.Name, Role: u.Role})
	}
}

// VerifyEmailRequest confirms a mailed verification code.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

func VerifyEmailHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		ok, err := consumeCode(c.Request.Context(), codeVerify, req.Email, req.Code)
		if err != nil || !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kod hatalı veya süresi dolmuş"})
			return
		}

		u, err := db.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kod hatalı veya süresi dolmuş"})
			return
		}
		if err := db.UpdateUserFields(c.Request.Context(), u.ID,
			map[string]interface{}{"email_verified": true}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Doğrulama kaydedilemedi"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "E-posta doğrulandı"})
	}
}

func ResendVerificationHandler(sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		sendVerification(c, sender, req.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Doğrulama kodu gönderildi"})
	}
}

func ForgotPasswordHandler(sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if _, err := db.GetUserByEmail(c.Request.Context(), req.Email); err != nil {
			c.JSON(http.StatusOK, gin.H{"message": "Kod gönderildi"})
			return
		}

		code := newCode()
		if err := storeCode(c.Request.Context(), codeReset, req.Email, code, codeTTL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kod gönderilemedi"})
			return
		}
		_ = sender.Send(req.Email, "KoçumNet şifre sıfırlama",
			fmt.Sprintf("Şifre sıfırlama kodunuz: %s (5 dakika geçerli)", code))
		c.JSON(http.StatusOK, gin.H{"message": "Kod gönderildi"})
	}
}

// ResetPasswordRequest sets a new password using a reset code.
type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6"`
	Password string `json:"password" binding:"required,min=6"`
}

func ResetPasswordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		ok, err := consumeCode(c.Request.Context(), codeReset, req.Email, req.Code)
		if err != nil || !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kod hatalı veya süresi dolmuş"})
			return
		}

		u, err := db.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kod hatalı veya süresi dolmuş"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Şifre güncellenemedi"})
			return
		}
		if err := db.UpdateUserFields(c.Request.Context(), u.ID,
			map[string]interface{}{"password_hash": string(hash)}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Şifre güncellenemedi"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Şifre güncellendi"})
	}
}

func sendVerification(c *gin.Context, sender email.Sender, addr string) {
	code := newCode()
	if err := storeCode(c.Request.Context(), codeVerify, addr, code, codeTTL); err != nil {
		return
	}
	_ = sender.Send(addr, "KoçumNet e-posta doğrulama",
		fmt.Sprintf("Doğrulama kodunuz: %s (5 dakika geçerli)", code))
}

func parseHeaderToken(cfg *config.Config, header string) (*jwt.Token, error) {
	const prefix = "Token "
	if !strings.HasPrefix(header, prefix) {
		return nil, errors.New("missing token")
	}
	return jwt.Parse(strings.TrimPrefix(header, prefix), func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
}
