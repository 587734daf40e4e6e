//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"vet-scheduler/internal/domain/user"
	"vet-scheduler/internal/pkg/config"
	"vet-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.generate(t, userID, role, nil)
}

// GenerateStaffToken mints a staff token bound to one clinic.
func (h *JWTHelper) GenerateStaffToken(t *testing.T, userID uuid.UUID, clinicID int64) string {
	t.Helper()
	return h.generate(t, userID, user.RoleStaff, &clinicID)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role, nil)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) generate(t *testing.T, userID uuid.UUID, role user.Role, clinicID *int64) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role, clinicID)
	require.NoError(t, err)
	return token
}
