package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/metrics"
	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/repositories"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AccountService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardResponse, error)
	RecordAnalysis(ctx context.Context, userID uuid.UUID, report *models.ScoreReport, jobDescription string) (*models.HistoryEntry, error)
}

type accountService struct {
	users      repositories.UserRepository
	history    repositories.HistoryRepository
	bcryptCost int
}

// NewAccountService returns an AccountService. A bcryptCost of 0 selects
// bcrypt.DefaultCost.
func NewAccountService(
	users repositories.UserRepository,
	history repositories.HistoryRepository,
	bcryptCost int,
) AccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &accountService{
		users:      users,
		history:    history,
		bcryptCost: bcryptCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *accountService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		metrics.AccountEvents.WithLabelValues("signup", "duplicate").Inc()
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			metrics.AccountEvents.WithLabelValues("signup", "duplicate").Inc()
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	metrics.AccountEvents.WithLabelValues("signup", "ok").Inc()
	logger.Info(ctx, "👤 User signed up", zap.String("user_id", user.ID.String()))

	return user, nil
}

func (s *accountService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			metrics.AccountEvents.WithLabelValues("login", "rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.AccountEvents.WithLabelValues("login", "rejected").Inc()
		return nil, ErrInvalidCredentials
	}

	metrics.AccountEvents.WithLabelValues("login", "ok").Inc()

	return user, nil
}

func (s *accountService) Dashboard(ctx context.Context, userID uuid.UUID) (*models.DashboardResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	return &models.DashboardResponse{
		UserName: user.Name,
		Scores:   entries,
		AvgScore: AverageScore(entries),
	}, nil
}

func (s *accountService) RecordAnalysis(
	ctx context.Context,
	userID uuid.UUID,
	report *models.ScoreReport,
	jobDescription string,
) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Score:          report.HistoryScore(),
		ATSScore:       report.ATSScore,
		JobDescription: jobDescription,
	}

	if err := s.history.Append(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// AverageScore is the arithmetic mean of the entry scores rounded to 2
// decimals, or 0 for no entries.
func AverageScore(entries []models.HistoryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	var sum float64
	for _, e := range entries {
		sum += e.Score
	}
	return round2(sum / float64(len(entries)))
}
