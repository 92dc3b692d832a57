package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS games (
    game_id              TEXT PRIMARY KEY,
    played_at            TEXT NOT NULL,
    seed                 INTEGER NOT NULL,
    party_name           TEXT NOT NULL,
    scale                TEXT NOT NULL,
    stance               TEXT NOT NULL,
    party_count          INTEGER NOT NULL,
    player_share         INTEGER NOT NULL,
    in_coalition         INTEGER NOT NULL DEFAULT 0,
    coalition_share      INTEGER NOT NULL,
    coalition_size       INTEGER NOT NULL,
    security             REAL NOT NULL,
    security_tier        TEXT NOT NULL,
    fiscal_rule          TEXT NOT NULL,
    budget_total         INTEGER NOT NULL,
    deficit              INTEGER NOT NULL,
    budget_done          INTEGER NOT NULL DEFAULT 0,
    tax_rate             REAL NOT NULL,
    days                 INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS game_parties (
    game_id              TEXT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
    party_id             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    social_label         TEXT NOT NULL,
    economic_label       TEXT NOT NULL,
    social               INTEGER NOT NULL,
    economic             INTEGER NOT NULL,
    vote_share           INTEGER NOT NULL,
    in_coalition         INTEGER NOT NULL DEFAULT 0,
    player               INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (game_id, party_id)
);

CREATE INDEX IF NOT EXISTS idx_games_played ON games(played_at);
`
