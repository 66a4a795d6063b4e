package store

const schema = `
-- Source images
CREATE TABLE IF NOT EXISTS images (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    uri TEXT NOT NULL UNIQUE,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL
);

-- Codec parameters
CREATE TABLE IF NOT EXISTS params (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    block_size INTEGER NOT NULL,
    threshold REAL NOT NULL,
    ecc TEXT NOT NULL,
    usage_ratio REAL NOT NULL,
    UNIQUE(block_size, threshold, ecc, usage_ratio)
);

-- One row per image, parameter set and attack
CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    image_id INTEGER NOT NULL,
    param_id INTEGER NOT NULL,
    attack TEXT NOT NULL,

    payload_bits INTEGER NOT NULL,
    code_bits INTEGER NOT NULL,
    applied_bits INTEGER NOT NULL,

    bit_errors INTEGER NOT NULL,
    ber REAL NOT NULL,
    matched BOOLEAN NOT NULL,
    psnr REAL NOT NULL,

    FOREIGN KEY (image_id) REFERENCES images(id) ON DELETE CASCADE,
    FOREIGN KEY (param_id) REFERENCES params(id) ON DELETE CASCADE,
    UNIQUE(image_id, param_id, attack)
);

CREATE INDEX IF NOT EXISTS idx_results_attack ON results(attack);
CREATE INDEX IF NOT EXISTS idx_results_match ON results(matched);

CREATE VIEW IF NOT EXISTS results_detailed AS
SELECT
    r.id,
    i.uri as image_uri,
    i.width,
    i.height,
    p.block_size,
    p.threshold,
    p.ecc,
    p.usage_ratio,
    r.attack,
    r.payload_bits,
    r.code_bits,
    r.applied_bits,
    r.bit_errors,
    r.ber,
    r.matched,
    r.psnr
FROM results r
JOIN images i ON r.image_id = i.id
JOIN params p ON r.param_id = p.id;
`
