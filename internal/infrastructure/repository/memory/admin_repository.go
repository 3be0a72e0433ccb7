package memory

import "context"

type AdminRepository struct {
	db *Database
}

func NewAdminRepository(db *Database) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Exists(_ context.Context, discordID string) (bool, error) {
	key, err := snowflake(discordID)
	if err != nil {
		return false, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	_, ok := r.db.admins[key]
	return ok, nil
}
