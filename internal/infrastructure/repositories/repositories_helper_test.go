package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'unassigned',
		password_hash TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createStudentProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE student_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		avatar_url TEXT,
		university TEXT,
		major TEXT,
		academic_year TEXT,
		gpa TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDonorProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE donor_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		avatar_url TEXT,
		total_donations TEXT NOT NULL DEFAULT '0.00',
		tier_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDonorTierTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE donor_tiers (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		min_donation DECIMAL(12,2) NOT NULL,
		benefits TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCampaignTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE campaigns (
		id TEXT PRIMARY KEY,
		student_profile_id TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		goal_amount TEXT NOT NULL,
		current_amount TEXT NOT NULL DEFAULT '0.00',
		category TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		image_url TEXT,
		deadline DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
