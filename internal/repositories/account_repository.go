package repositories

import (
	"database/sql"
	"fmt"

	"gossip/internal/models"
)

type AccountRepository interface {
	// UpsertUnverified inserts an unverified account with a pending code,
	// or refreshes password/username/code on an existing unverified row.
	// Returns nil when the email belongs to a verified account.
	UpsertUnverified(email, passwordHash, username, code string) (*models.Account, error)

	IsConfirmed(email string) (bool, error)

	// PendingFor returns the current pending verification while the owning
	// account is still unverified; nil otherwise.
	PendingFor(email string) (*models.PendingVerification, error)

	// Confirm flips is_verified and deletes the pending row in one
	// transaction. Returns nil when no unverified account exists.
	Confirm(email string) (*models.Account, error)

	FindCredentials(email string) (*models.Credentials, error)

	// profile lookups
	GetByID(id int) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
}

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) UpsertUnverified(email, passwordHash, username, code string) (*models.Account, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("upsert account: begin: %w", err)
	}
	defer tx.Rollback()

	// The conflict target serializes concurrent registrations for the same
	// email into one insert plus updates. A verified row matches neither
	// branch, so no row comes back.
	const q = `
		INSERT INTO accounts (email, username, password_hash, is_verified)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (email) DO UPDATE
			SET username = EXCLUDED.username,
			    password_hash = EXCLUDED.password_hash
			WHERE accounts.is_verified = FALSE
		RETURNING id, email, username, bio, password_hash, is_verified
	`
	a := &models.Account{}
	err = tx.QueryRow(q, email, username, passwordHash).Scan(
		&a.ID, &a.Email, &a.Username, &a.Bio, &a.PasswordHash, &a.IsVerified,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("upsert account: %w", err)
	}

	const qCode = `
		INSERT INTO pending_verifications (account_id, code)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET code = EXCLUDED.code
	`
	if _, err := tx.Exec(qCode, a.ID, code); err != nil {
		return nil, fmt.Errorf("upsert pending verification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("upsert account: commit: %w", err)
	}
	return a, nil
}

func (r *accountRepository) IsConfirmed(email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1 AND is_verified = TRUE)`
	var confirmed bool
	if err := r.DB.QueryRow(q, email).Scan(&confirmed); err != nil {
		return false, fmt.Errorf("is confirmed: %w", err)
	}
	return confirmed, nil
}

func (r *accountRepository) PendingFor(email string) (*models.PendingVerification, error) {
	const q = `
		SELECT p.account_id, p.code
		FROM pending_verifications p
		JOIN accounts a ON a.id = p.account_id
		WHERE a.email = $1 AND a.is_verified = FALSE
	`
	p := &models.PendingVerification{}
	if err := r.DB.QueryRow(q, email).Scan(&p.AccountID, &p.Code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending verification: %w", err)
	}
	return p, nil
}

func (r *accountRepository) Confirm(email string) (*models.Account, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("confirm account: begin: %w", err)
	}
	defer tx.Rollback()

	const q = `
		UPDATE accounts
		SET is_verified = TRUE
		WHERE email = $1 AND is_verified = FALSE
		RETURNING id, email, username, bio, password_hash, is_verified
	`
	a := &models.Account{}
	err = tx.QueryRow(q, email).Scan(
		&a.ID, &a.Email, &a.Username, &a.Bio, &a.PasswordHash, &a.IsVerified,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("confirm account: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM pending_verifications WHERE account_id = $1`, a.ID); err != nil {
		return nil, fmt.Errorf("confirm account: delete pending: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("confirm account: commit: %w", err)
	}
	return a, nil
}

func (r *accountRepository) FindCredentials(email string) (*models.Credentials, error) {
	const q = `SELECT id, password_hash FROM accounts WHERE email = $1`
	c := &models.Credentials{}
	if err := r.DB.QueryRow(q, email).Scan(&c.AccountID, &c.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find credentials: %w", err)
	}
	return c, nil
}

func (r *accountRepository) GetByID(id int) (*models.Profile, error) {
	const q = `SELECT id, username, bio FROM accounts WHERE id = $1`
	p := &models.Profile{}
	if err := r.DB.QueryRow(q, id).Scan(&p.ID, &p.Username, &p.Bio); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return p, nil
}

func (r *accountRepository) GetByEmail(email string) (*models.Profile, error) {
	const q = `SELECT id, username, bio FROM accounts WHERE email = $1`
	p := &models.Profile{}
	if err := r.DB.QueryRow(q, email).Scan(&p.ID, &p.Username, &p.Bio); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return p, nil
}
