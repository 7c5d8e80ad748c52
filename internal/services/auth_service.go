package services

import (
	"errors"
	"fmt"
	"log"

	"gossip/internal/repositories"
	"gossip/internal/utils"
)

var (
	// ErrEmailTaken means a verified account already owns the email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrCodeInvalid covers a missing pending record and a wrong code alike,
	// so callers cannot probe which emails have accounts.
	ErrCodeInvalid = errors.New("code invalid")
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(email, password, name string) error
	VerifyEmail(email, code string) (string, error)
	Login(email, password string) (string, error)
}

type authService struct {
	repo   repositories.AccountRepository
	emails EmailService
	tokens TokenService
}

func NewAuthService(repo repositories.AccountRepository, emails EmailService, tokens TokenService) AuthService {
	return &authService{repo: repo, emails: emails, tokens: tokens}
}

// Register creates (or refreshes) an unverified account and mails its code.
// Re-registering an unverified email replaces password, name and code on the
// existing row rather than creating a duplicate.
func (s *authService) Register(email, password, name string) error {
	confirmed, err := s.repo.IsConfirmed(email)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if confirmed {
		return ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	code, err := utils.VerificationCode()
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	account, err := s.repo.UpsertUnverified(email, hash, name, code)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if account == nil {
		// confirmed concurrently between the check and the upsert
		return ErrEmailTaken
	}

	// The send happens after the row is durable: a failure here still leaves
	// a retryable pending registration behind, and re-registering reissues.
	if err := s.emails.SendVerificationCode(email, code); err != nil {
		log.Printf("[auth][register] send code failed account_id=%d: %v", account.ID, err)
		return fmt.Errorf("register: %w", err)
	}

	log.Printf("[auth][register] pending account_id=%d", account.ID)
	return nil
}

// VerifyEmail checks the supplied code against the current pending one and,
// on match, confirms the account and issues a token.
func (s *authService) VerifyEmail(email, code string) (string, error) {
	pending, err := s.repo.PendingFor(email)
	if err != nil {
		return "", fmt.Errorf("verify email: %w", err)
	}
	if pending == nil || pending.Code != code {
		return "", ErrCodeInvalid
	}

	account, err := s.repo.Confirm(email)
	if err != nil {
		return "", fmt.Errorf("verify email: %w", err)
	}
	if account == nil {
		// a concurrent re-registration or verify won the race; the client
		// retries with whatever code is now current
		return "", fmt.Errorf("verify email: account no longer pending")
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return "", fmt.Errorf("verify email: %w", err)
	}

	log.Printf("[auth][verify] confirmed account_id=%d", account.ID)
	return token, nil
}

// Login is deliberately not gated on verification; see DESIGN.md.
func (s *authService) Login(email, password string) (string, error) {
	creds, err := s.repo.FindCredentials(email)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if creds == nil {
		return "", ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, creds.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(creds.AccountID)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	log.Printf("[auth][login] success account_id=%d", creds.AccountID)
	return token, nil
}
