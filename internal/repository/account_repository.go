package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/user-account-service/internal/model"
)

// AccountRepo persists accounts and their phones over MySQL. Emails are
// stored exactly as received; uniqueness is enforced by the unique index
// on accounts.email, not by normalization. All timestamps are UTC.
type AccountRepo struct {
	db *sql.DB
}

// NewAccountRepo returns an AccountRepo bound to the given database.
func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{db: db} }

// ExistsByEmail reports whether an account row with the given email exists.
func (r *AccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM accounts WHERE email=?", email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindByEmail fetches an account and its phones by exact email. It returns
// ErrNotFound when no row matches.
func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id,email,password_hash,name,created,last_login,token,is_active FROM accounts WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Created, &a.LastLogin, &a.Token, &a.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	phones, err := r.phonesByAccount(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Phones = phones
	return &a, nil
}

// Save is insert-or-update. A new account is inserted together with its
// phone rows in one transaction; an existing account only has its mutable
// fields (token, last_login) updated, since nothing else changes after
// sign-up. Duplicate email inserts map to ErrEmailExists.
func (r *AccountRepo) Save(ctx context.Context, a *model.Account) error {
	var n int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM accounts WHERE id=?", a.ID).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		_, err := r.db.ExecContext(ctx,
			"UPDATE accounts SET token=?, last_login=? WHERE id=?",
			a.Token, a.LastLogin, a.ID)
		return err
	}
	return r.insert(ctx, a)
}

func (r *AccountRepo) insert(ctx context.Context, a *model.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO accounts (id, email, password_hash, name, created, last_login, token, is_active) VALUES (?,?,?,?,?,?,?,?)",
		a.ID, a.Email, a.PasswordHash, a.Name, a.Created, a.LastLogin, a.Token, a.IsActive)
	if err != nil {
		// MySQL error 1062 = duplicate entry on the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}

	for i := range a.Phones {
		p := &a.Phones[i]
		p.AccountID = a.ID
		res, err := tx.ExecContext(ctx,
			"INSERT INTO phones (account_id, number, city_code, country_code) VALUES (?,?,?,?)",
			p.AccountID, p.Number, p.CityCode, p.CountryCode)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		p.ID = uint64(id)
	}

	return tx.Commit()
}

// phonesByAccount loads the phone rows owned by an account, ordered by id
// so callers observe a stable order.
func (r *AccountRepo) phonesByAccount(ctx context.Context, accountID string) ([]model.Phone, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, account_id, number, city_code, country_code FROM phones WHERE account_id=? ORDER BY id",
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phones []model.Phone
	for rows.Next() {
		var p model.Phone
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Number, &p.CityCode, &p.CountryCode); err != nil {
			return nil, err
		}
		phones = append(phones, p)
	}
	return phones, rows.Err()
}
