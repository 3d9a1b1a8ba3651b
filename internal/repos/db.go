package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// Every sqlite connection gets its own in-memory database; keep
		// the pool at one so the schema is visible everywhere.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (accounts/sellers/products/stocks)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Accounts
CREATE TABLE IF NOT EXISTS accounts(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  permission_type_id INTEGER NOT NULL CHECK (permission_type_id IN (1,2,3)),
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS customer_information(
  account_id INTEGER PRIMARY KEY REFERENCES accounts(id) ON DELETE CASCADE,
  name  TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT NOT NULL
);

-- Sellers
CREATE TABLE IF NOT EXISTS sellers(
  id INTEGER PRIMARY KEY REFERENCES accounts(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  english_name TEXT NOT NULL DEFAULT '',
  profile_image_url TEXT NOT NULL DEFAULT '',
  background_image_url TEXT NOT NULL DEFAULT '',
  introduction TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS seller_categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  seller_id INTEGER NOT NULL REFERENCES sellers(id) ON DELETE CASCADE,
  name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_seller_categories_seller ON seller_categories(seller_id);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_code TEXT UNIQUE,
  seller_id  INTEGER NOT NULL REFERENCES sellers(id)  ON DELETE RESTRICT,
  account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE RESTRICT,
  is_display INTEGER NOT NULL DEFAULT 1,
  is_sale    INTEGER NOT NULL DEFAULT 1,
  main_category_id INTEGER NOT NULL,
  sub_category_id  INTEGER NOT NULL,
  is_product_notice INTEGER NOT NULL DEFAULT 0,
  manufacturer TEXT NOT NULL DEFAULT '',
  manufacturing_date TEXT NOT NULL DEFAULT '',
  product_origin_type_id INTEGER NOT NULL DEFAULT 0,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  detail_information TEXT NOT NULL DEFAULT '',
  origin_price     NUMERIC NOT NULL CHECK (origin_price >= 0),
  discount_rate    NUMERIC NOT NULL DEFAULT 0,
  discounted_price NUMERIC NOT NULL DEFAULT 0,
  discount_start_date TEXT NOT NULL DEFAULT '',
  discount_end_date   TEXT NOT NULL DEFAULT '',
  minimum_quantity INTEGER NOT NULL DEFAULT 1,
  maximum_quantity INTEGER NOT NULL DEFAULT 20,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_seller ON products(seller_id);
CREATE INDEX IF NOT EXISTS idx_products_name   ON products(LOWER(name));

CREATE TABLE IF NOT EXISTS product_images(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  image_url TEXT NOT NULL,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  order_index INTEGER NOT NULL,
  is_deleted INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_product_images_product ON product_images(product_id);

CREATE TABLE IF NOT EXISTS stocks(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_option_code TEXT NOT NULL UNIQUE,
  remain INTEGER NOT NULL CHECK (remain >= 0),
  color_id INTEGER NOT NULL,
  size_id  INTEGER NOT NULL,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  is_deleted INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_stocks_product ON stocks(product_id);

CREATE TABLE IF NOT EXISTS product_histories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  product_name TEXT NOT NULL,
  is_display INTEGER NOT NULL,
  is_sale    INTEGER NOT NULL,
  origin_price     NUMERIC NOT NULL,
  discounted_price NUMERIC NOT NULL,
  discount_rate    NUMERIC NOT NULL,
  discount_start_date TEXT NOT NULL DEFAULT '',
  discount_end_date   TEXT NOT NULL DEFAULT '',
  minimum_quantity INTEGER NOT NULL,
  maximum_quantity INTEGER NOT NULL,
  updater_id INTEGER NOT NULL REFERENCES accounts(id),
  is_product_deleted INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_product_histories_product ON product_histories(product_id);

-- Destinations
CREATE TABLE IF NOT EXISTS destinations(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
  recipient TEXT NOT NULL,
  phone TEXT NOT NULL,
  address1 TEXT NOT NULL,
  address2 TEXT NOT NULL DEFAULT '',
  post_number TEXT NOT NULL,
  default_location INTEGER NOT NULL DEFAULT 0,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_destinations_account ON destinations(account_id);

-- Carts
CREATE TABLE IF NOT EXISTS cart_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  stock_id   INTEGER NOT NULL REFERENCES stocks(id)   ON DELETE RESTRICT,
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  original_price   NUMERIC NOT NULL,
  sale             NUMERIC NOT NULL DEFAULT 0,
  discounted_price NUMERIC NOT NULL,
  sold_out INTEGER NOT NULL DEFAULT 0,
  is_deleted INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cart_items_account ON cart_items(account_id);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_number TEXT UNIQUE,
  account_id INTEGER NOT NULL REFERENCES accounts(id),
  cart_item_id INTEGER NOT NULL REFERENCES cart_items(id),
  total_price NUMERIC NOT NULL,
  sender_name  TEXT NOT NULL,
  sender_phone TEXT NOT NULL,
  sender_email TEXT NOT NULL,
  recipient_name  TEXT NOT NULL,
  recipient_phone TEXT NOT NULL,
  address1 TEXT NOT NULL,
  address2 TEXT NOT NULL DEFAULT '',
  post_number TEXT NOT NULL,
  delivery_memo_type_id INTEGER NOT NULL DEFAULT 0,
  delivery_content TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_account ON orders(account_id);

CREATE TABLE IF NOT EXISTS order_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_item_code TEXT NOT NULL UNIQUE,
  order_id   INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id),
  stock_id   INTEGER NOT NULL REFERENCES stocks(id),
  quantity INTEGER NOT NULL,
  price NUMERIC NOT NULL,
  status_type_id INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

CREATE TABLE IF NOT EXISTS order_histories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  status_type_id INTEGER NOT NULL,
  updater_id INTEGER NOT NULL REFERENCES accounts(id),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty loads demo accounts, a seller storefront and a couple of
// products so the API is usable on a fresh database. Idempotent.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM accounts`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo accounts/sellers/products")

	hash := func(raw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return string(h)
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO accounts(id,username,password_hash,permission_type_id) VALUES
	  (1,'master', ?, 1),
	  (2,'seller1',?, 2),
	  (3,'user1',  ?, 3),
	  (4,'user2',  ?, 3)`,
		hash("Passw0rd!"), hash("Passw0rd!"), hash("Passw0rd!"), hash("Passw0rd!"))

	tx.MustExec(`INSERT INTO customer_information(account_id,name,phone,email) VALUES
	  (3,'Suhee Go','01012341234','suhee@modemarket.test')`)

	tx.MustExec(`INSERT INTO sellers(id,name,english_name,introduction) VALUES
	  (2,'모드마켓 스토어','modemarket store','Curated daily wear')`)

	tx.MustExec(`INSERT INTO seller_categories(seller_id,name) VALUES
	  (2,'Outer'),(2,'Top'),(2,'Bottom')`)

	tx.MustExec(`INSERT INTO products(
	    id,product_code,seller_id,account_id,main_category_id,sub_category_id,
	    name,description,origin_price,discount_rate,discounted_price,
	    minimum_quantity,maximum_quantity) VALUES
	  (1,'PC202101010000001',2,2,1,1,'Wool Coat','Winter wool coat',89000,0.10,80100,1,20),
	  (2,'PC202101010000002',2,2,2,4,'Linen Shirt','Breathable linen shirt',32000,0,32000,1,20)`)

	tx.MustExec(`INSERT INTO product_images(image_url,product_id,order_index) VALUES
	  ('images/products/1/main.jpg',1,1),
	  ('images/products/2/main.jpg',2,1)`)

	tx.MustExec(`INSERT INTO stocks(product_option_code,remain,color_id,size_id,product_id) VALUES
	  ('PC2021010100000010101',8,1,1,1),
	  ('PC2021010100000010102',3,1,2,1),
	  ('PC2021010100000020101',5,1,1,2)`)

	return tx.Commit()
}
