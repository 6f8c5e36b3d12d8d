package sqlite

import "database/sql"

// schema runs on startup to ensure tables exist.
// members.position preserves snapshot order across rewrites.
// Money columns hold decimal strings, not REAL, so totals never drift.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    frequency INTEGER NOT NULL CHECK (frequency >= 0),
    phone TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS receipts (
    id TEXT PRIMARY KEY,
    member_id TEXT,
    subtotal TEXT NOT NULL,
    due TEXT NOT NULL,
    discounted INTEGER NOT NULL,
    method TEXT NOT NULL,
    tendered TEXT NOT NULL,
    change_given TEXT NOT NULL,
    card_masked TEXT,
    card_fingerprint TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS receipt_items (
    receipt_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    item_key TEXT NOT NULL,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
    PRIMARY KEY (receipt_id, position),
    FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_members_position ON members(position);
CREATE INDEX IF NOT EXISTS idx_receipts_member_id ON receipts(member_id);
CREATE INDEX IF NOT EXISTS idx_receipt_items_receipt_id ON receipt_items(receipt_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
