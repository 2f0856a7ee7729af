package db

import "database/sql"

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullID stores a nullable foreign key.
func NullID(id *int64) any {
	if id == nil || *id <= 0 {
		return nil
	}
	return *id
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email),
	UNIQUE KEY uniq_users_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS providers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	type VARCHAR(50) NOT NULL,
	contact_name VARCHAR(255) NULL,
	email VARCHAR(255) NULL,
	phone VARCHAR(50) NULL,
	address VARCHAR(500) NULL,
	city VARCHAR(100) NULL,
	country VARCHAR(100) NOT NULL DEFAULT 'Tunisie',
	service_zones TEXT NULL,
	notes TEXT NULL,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS vehicles (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	provider_id BIGINT NULL,
	name VARCHAR(255) NOT NULL,
	type VARCHAR(50) NOT NULL,
	capacity INT NOT NULL,
	luggage INT NOT NULL DEFAULT 0,
	description TEXT NULL,
	features TEXT NULL,
	image_url VARCHAR(500) NULL,
	base_price_cents BIGINT NOT NULL,
	price_per_km_cents BIGINT NULL,
	license_plate VARCHAR(50) NULL,
	driver_name VARCHAR(255) NULL,
	is_available TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_vehicles_provider (provider_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS vehicle_seasonal_prices (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	vehicle_id BIGINT NOT NULL,
	season_name VARCHAR(100) NOT NULL,
	start_date CHAR(5) NOT NULL,
	end_date CHAR(5) NOT NULL,
	price_per_km_cents BIGINT NOT NULL,
	KEY idx_seasonal_vehicle (vehicle_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS vehicle_hourly_prices (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	vehicle_id BIGINT NOT NULL,
	season_name VARCHAR(100) NOT NULL,
	start_date CHAR(5) NOT NULL,
	end_date CHAR(5) NOT NULL,
	price_per_hour_cents BIGINT NOT NULL,
	KEY idx_hourly_vehicle (vehicle_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS city_tours (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	provider_id BIGINT NULL,
	name VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	full_description TEXT NULL,
	category VARCHAR(50) NOT NULL,
	duration INT NOT NULL,
	difficulty VARCHAR(20) NOT NULL,
	max_capacity INT NOT NULL,
	min_participants INT NOT NULL DEFAULT 2,
	price_cents BIGINT NOT NULL,
	price_child_cents BIGINT NULL,
	included TEXT NULL,
	excluded TEXT NULL,
	highlights TEXT NULL,
	meeting_point VARCHAR(500) NOT NULL,
	meeting_time VARCHAR(20) NULL,
	image_url VARCHAR(500) NULL,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	featured TINYINT(1) NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_tours_slug (slug)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS tour_stops (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	tour_id BIGINT NOT NULL,
	position INT NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT NULL,
	duration_minutes INT NULL,
	activity VARCHAR(100) NULL,
	KEY idx_stops_tour (tour_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS customers (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NOT NULL,
	country VARCHAR(100) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_customers_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS transfer_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(30) NOT NULL,
	customer_id BIGINT NOT NULL,
	vehicle_id BIGINT NOT NULL,
	provider_id BIGINT NULL,
	transfer_type VARCHAR(20) NOT NULL,
	pickup_location VARCHAR(500) NOT NULL,
	dropoff_location VARCHAR(500) NOT NULL,
	pickup_date DATE NOT NULL,
	pickup_time VARCHAR(10) NOT NULL,
	return_date DATE NULL,
	return_time VARCHAR(10) NULL,
	passengers INT NOT NULL,
	luggage INT NOT NULL DEFAULT 0,
	flight_number VARCHAR(20) NULL,
	special_requests TEXT NULL,
	total_price_cents BIGINT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_transfer_reference (reference),
	KEY idx_transfer_customer (customer_id),
	KEY idx_transfer_provider (provider_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS disposal_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(30) NOT NULL,
	customer_id BIGINT NOT NULL,
	vehicle_id BIGINT NOT NULL,
	provider_id BIGINT NULL,
	start_location VARCHAR(500) NOT NULL,
	date DATE NOT NULL,
	time VARCHAR(10) NOT NULL,
	hours INT NOT NULL,
	passengers INT NOT NULL,
	special_requests TEXT NULL,
	total_price_cents BIGINT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_disposal_reference (reference),
	KEY idx_disposal_customer (customer_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS tour_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(30) NOT NULL,
	customer_id BIGINT NOT NULL,
	tour_id BIGINT NOT NULL,
	tour_date DATE NOT NULL,
	adults INT NOT NULL,
	children INT NOT NULL DEFAULT 0,
	total_price_cents BIGINT NOT NULL,
	special_requests TEXT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_tour_reference (reference),
	KEY idx_tourbooking_customer (customer_id),
	KEY idx_tourbooking_tour (tour_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS payment_intents (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	order_id VARCHAR(64) NOT NULL,
	payment_ref VARCHAR(128) NOT NULL DEFAULT '',
	booking_type VARCHAR(20) NOT NULL,
	booking_id BIGINT NOT NULL,
	amount_cents BIGINT NOT NULL,
	currency VARCHAR(10) NOT NULL DEFAULT 'EUR',
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	pay_url VARCHAR(500) NULL,
	expires_at TIMESTAMP NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_intent_order (order_id),
	KEY idx_intent_ref (payment_ref)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS homepage_content (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	section VARCHAR(100) NOT NULL,
	title VARCHAR(255) NOT NULL,
	subtitle VARCHAR(500) NULL,
	content TEXT NULL,
	image_url VARCHAR(500) NULL,
	position INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS contact_info (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	address VARCHAR(500) NOT NULL DEFAULT '',
	phone1 VARCHAR(50) NOT NULL DEFAULT '',
	phone2 VARCHAR(50) NULL,
	email VARCHAR(255) NOT NULL DEFAULT '',
	about_text TEXT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS social_media_links (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	platform VARCHAR(50) NOT NULL,
	url VARCHAR(500) NOT NULL,
	icon VARCHAR(100) NULL,
	position INT NOT NULL DEFAULT 0,
	is_active TINYINT(1) NOT NULL DEFAULT 1
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates missing tables on startup.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
