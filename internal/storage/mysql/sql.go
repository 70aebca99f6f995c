package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, name, intro, website, avatar_src, city, country, interests, amenities, amenity_groups, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  intro          = VALUES(intro),
  website        = VALUES(website),
  avatar_src     = VALUES(avatar_src),
  city           = VALUES(city),
  country        = VALUES(country),
  interests      = VALUES(interests),
  amenities      = VALUES(amenities),
  amenity_groups = VALUES(amenity_groups),
  raw            = VALUES(raw),
  updated_at     = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO ingest_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE http_status = VALUES(http_status), reason = VALUES(reason), seen_at = CURRENT_TIMESTAMP
`

// Nullable text columns come back as "" so the renderers can test presence
// with a plain comparison.
const getPropertySQL = `
SELECT
  p.id,
  COALESCE(p.name, ''),
  COALESCE(p.intro, ''),
  COALESCE(p.website, ''),
  COALESCE(p.avatar_src, ''),
  COALESCE(p.city, ''),
  COALESCE(p.country, ''),
  p.interests,
  p.amenities,
  p.amenity_groups
FROM properties p
WHERE p.id = ?
`
