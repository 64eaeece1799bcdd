package setup

type ddlStatement struct {
	Name string
	SQL  string
}

// postgresSchema is applied in order. Constraints are separate statements so
// each one is classified on its own.
var postgresSchema = []ddlStatement{
	{"create_table_users", `CREATE TABLE users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL,
		display_name TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"create_index_users_email", `CREATE UNIQUE INDEX idx_users_email ON users (email)`},

	{"create_table_provinces", `CREATE TABLE provinces (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},

	{"create_table_cities", `CREATE TABLE cities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		province_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"add_fk_cities_province", `ALTER TABLE cities ADD CONSTRAINT fk_cities_province
		FOREIGN KEY (province_id) REFERENCES provinces (id) ON UPDATE CASCADE ON DELETE RESTRICT`},
	{"create_index_cities_province", `CREATE INDEX idx_cities_province ON cities (province_id)`},

	{"create_table_dog_listings", `CREATE TABLE dog_listings (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		dog_name TEXT NOT NULL,
		age INTEGER NOT NULL CHECK (age > 0),
		size TEXT NOT NULL CHECK (size IN ('small', 'medium', 'large')),
		gender TEXT NOT NULL CHECK (gender IN ('male', 'female')),
		breed TEXT,
		is_urgent BOOLEAN NOT NULL DEFAULT FALSE,
		is_vaccinated BOOLEAN NOT NULL DEFAULT FALSE,
		is_neutered BOOLEAN NOT NULL DEFAULT FALSE,
		contact_email TEXT NOT NULL,
		contact_phone TEXT,
		contact_name TEXT NOT NULL,
		province_id TEXT NOT NULL,
		city_id TEXT NOT NULL,
		image_urls JSONB NOT NULL DEFAULT '[]'::jsonb,
		listing_type TEXT NOT NULL DEFAULT 'adoption' CHECK (listing_type IN ('adoption', 'foster', 'lost', 'found')),
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'adopted', 'inactive')),
		user_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"add_fk_dog_listings_province", `ALTER TABLE dog_listings ADD CONSTRAINT fk_dog_listings_province
		FOREIGN KEY (province_id) REFERENCES provinces (id) ON UPDATE CASCADE ON DELETE RESTRICT`},
	{"add_fk_dog_listings_city", `ALTER TABLE dog_listings ADD CONSTRAINT fk_dog_listings_city
		FOREIGN KEY (city_id) REFERENCES cities (id) ON UPDATE CASCADE ON DELETE RESTRICT`},
	{"add_fk_dog_listings_user", `ALTER TABLE dog_listings ADD CONSTRAINT fk_dog_listings_user
		FOREIGN KEY (user_id) REFERENCES users (id) ON UPDATE CASCADE ON DELETE SET NULL`},
	{"create_index_dog_listings_province", `CREATE INDEX idx_dog_listings_province ON dog_listings (province_id)`},
	{"create_index_dog_listings_city", `CREATE INDEX idx_dog_listings_city ON dog_listings (city_id)`},
	{"create_index_dog_listings_size", `CREATE INDEX idx_dog_listings_size ON dog_listings (size)`},
	{"create_index_dog_listings_age", `CREATE INDEX idx_dog_listings_age ON dog_listings (age)`},
	{"create_index_dog_listings_urgent", `CREATE INDEX idx_dog_listings_urgent ON dog_listings (is_urgent)`},
	{"create_index_dog_listings_type", `CREATE INDEX idx_dog_listings_type ON dog_listings (listing_type)`},
	{"create_index_dog_listings_status", `CREATE INDEX idx_dog_listings_status ON dog_listings (status)`},
	{"create_index_dog_listings_created", `CREATE INDEX idx_dog_listings_created ON dog_listings (created_at DESC)`},

	{"create_table_messages", `CREATE TABLE messages (
		id UUID PRIMARY KEY,
		listing_id UUID NOT NULL,
		sender_name TEXT NOT NULL,
		sender_email TEXT NOT NULL,
		sender_phone TEXT,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"add_fk_messages_listing", `ALTER TABLE messages ADD CONSTRAINT fk_messages_listing
		FOREIGN KEY (listing_id) REFERENCES dog_listings (id) ON UPDATE CASCADE ON DELETE CASCADE`},
	{"create_index_messages_listing", `CREATE INDEX idx_messages_listing ON messages (listing_id)`},
	{"create_index_messages_created", `CREATE INDEX idx_messages_created ON messages (created_at DESC)`},
	{"create_index_messages_unread", `CREATE INDEX idx_messages_unread ON messages (is_read)`},
}
