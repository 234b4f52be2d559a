package store

import (
	"strings"
	"time"

	"devjournal/models"

	sq "github.com/Masterminds/squirrel"
)

// psql builds every dynamic query with $N placeholders. Both supported
// drivers accept the dollar form.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns    = "id, email, username, name, avatar, bio, github_url, linkedin_url, created_at, updated_at"
	entryColumns   = "id, title, content, summary, is_public, user_id, created_at, updated_at"
	snippetColumns = "id, title, code, language, description, is_public, user_id, entry_id, created_at, updated_at"
)

const (
	createUser = `INSERT INTO users (id, email, username, name, avatar, bio, github_url, linkedin_url, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
	FROM users
	WHERE username = $1;`

	createEntry = `INSERT INTO entries (id, title, content, summary, is_public, user_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	findEntryByID = `SELECT ` + entryColumns + `
	FROM entries
	WHERE id = $1;`

	setEntrySummary = `UPDATE entries
	SET summary = $1, updated_at = $2
	WHERE id = $3 AND user_id = $4;`

	deleteEntry = `DELETE FROM entries
	WHERE id = $1 AND user_id = $2;`

	createSnippet = `INSERT INTO snippets (id, title, code, language, description, is_public, user_id, entry_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	findSnippetByID = `SELECT ` + snippetColumns + `
	FROM snippets
	WHERE id = $1;`

	listSnippetsByEntry = `SELECT ` + snippetColumns + `
	FROM snippets
	WHERE entry_id = $1
	ORDER BY created_at DESC;`

	listPublicSnippetsByEntry = `SELECT ` + snippetColumns + `
	FROM snippets
	WHERE entry_id = $1 AND is_public = TRUE
	ORDER BY created_at DESC;`

	deleteSnippet = `DELETE FROM snippets
	WHERE id = $1 AND user_id = $2;`

	insertTag = `INSERT INTO tags (id, name, created_at)
	VALUES ($1, $2, $3);`

	findTagByName = `SELECT id, name, created_at
	FROM tags
	WHERE name = $1;`

	listTags = `SELECT id, name, created_at
	FROM tags
	ORDER BY name ASC;`

	popularTags = `SELECT t.id, t.name, t.created_at, COUNT(et.entry_id) AS entry_count
	FROM tags t
	LEFT JOIN entry_tags et ON et.tag_id = t.id
	GROUP BY t.id, t.name, t.created_at
	ORDER BY entry_count DESC, t.name ASC
	LIMIT $1;`

	searchTags = `SELECT id, name, created_at
	FROM tags
	WHERE name LIKE $1
	ORDER BY name ASC
	LIMIT $2;`

	deleteTagByName = `DELETE FROM tags
	WHERE name = $1;`

	listEntryTags = `SELECT t.id, t.name, t.created_at
	FROM tags t
	JOIN entry_tags et ON et.tag_id = t.id
	WHERE et.entry_id = $1
	ORDER BY t.name ASC;`

	attachTag = `INSERT INTO entry_tags (entry_id, tag_id)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING;`

	clearEntryTags = `DELETE FROM entry_tags
	WHERE entry_id = $1;`

	listEntriesByTag = `SELECT e.id, e.title, e.content, e.summary, e.is_public, e.user_id, e.created_at, e.updated_at
	FROM entries e
	JOIN entry_tags et ON et.entry_id = e.id
	JOIN tags t ON t.id = et.tag_id
	WHERE t.name = $1 AND e.is_public = TRUE
	ORDER BY e.created_at DESC
	LIMIT $2 OFFSET $3;`

	countEntriesByTag = `SELECT COUNT(*)
	FROM entries e
	JOIN entry_tags et ON et.entry_id = e.id
	JOIN tags t ON t.id = et.tag_id
	WHERE t.name = $1 AND e.is_public = TRUE;`
)

// entryFilterConditions returns the WHERE conditions for entry listings,
// shared by the list and count builders.
func entryFilterConditions(f models.EntryFilter) []sq.Sqlizer {
	conds := make([]sq.Sqlizer, 0, 3)

	if f.UserID != "" {
		conds = append(conds, sq.Eq{"user_id": f.UserID})
	}
	if f.IsPublic != nil {
		conds = append(conds, sq.Eq{"is_public": *f.IsPublic})
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, sq.Or{
			sq.Like{"LOWER(title)": pattern},
			sq.Like{"LOWER(content)": pattern},
		})
	}

	return conds
}

func buildListEntriesQuery(f models.EntryFilter) (string, []any, error) {
	q := psql.Select(entryColumns).From("entries")
	for _, cond := range entryFilterConditions(f) {
		q = q.Where(cond)
	}

	page := models.NormalizePage(f.Page, f.Limit)
	q = q.OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	return q.ToSql()
}

func buildCountEntriesQuery(f models.EntryFilter) (string, []any, error) {
	q := psql.Select("COUNT(*)").From("entries")
	for _, cond := range entryFilterConditions(f) {
		q = q.Where(cond)
	}

	return q.ToSql()
}

func snippetFilterConditions(f models.SnippetFilter) []sq.Sqlizer {
	conds := make([]sq.Sqlizer, 0, 4)

	if f.PublicOnly {
		conds = append(conds, sq.Eq{"is_public": true})
	}
	if f.UserID != "" {
		conds = append(conds, sq.Eq{"user_id": f.UserID})
	}
	if f.Language != "" {
		conds = append(conds, sq.Eq{"language": f.Language})
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conds = append(conds, sq.Or{
			sq.Like{"LOWER(title)": pattern},
			sq.Like{"LOWER(description)": pattern},
		})
	}

	return conds
}

func buildListSnippetsQuery(f models.SnippetFilter) (string, []any, error) {
	q := psql.Select(snippetColumns).From("snippets")
	for _, cond := range snippetFilterConditions(f) {
		q = q.Where(cond)
	}

	page := models.NormalizePage(f.Page, f.Limit)
	q = q.OrderBy("created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	return q.ToSql()
}

func buildCountSnippetsQuery(f models.SnippetFilter) (string, []any, error) {
	q := psql.Select("COUNT(*)").From("snippets")
	for _, cond := range snippetFilterConditions(f) {
		q = q.Where(cond)
	}

	return q.ToSql()
}

func buildUpdateEntryQuery(id, userID string, u models.EntryUpdate, now time.Time) (string, []any, error) {
	q := psql.Update("entries").Set("updated_at", now)

	if u.Title != nil {
		q = q.Set("title", *u.Title)
	}
	if u.Content != nil {
		q = q.Set("content", *u.Content)
	}
	if u.Summary != nil {
		q = q.Set("summary", *u.Summary)
	}
	if u.IsPublic != nil {
		q = q.Set("is_public", *u.IsPublic)
	}

	q = q.Where(sq.Eq{"id": id, "user_id": userID})

	return q.ToSql()
}

func buildUpdateSnippetQuery(id, userID string, u models.SnippetUpdate, now time.Time) (string, []any, error) {
	q := psql.Update("snippets").Set("updated_at", now)

	if u.Title != nil {
		q = q.Set("title", *u.Title)
	}
	if u.Code != nil {
		q = q.Set("code", *u.Code)
	}
	if u.Language != nil {
		q = q.Set("language", *u.Language)
	}
	if u.Description != nil {
		q = q.Set("description", *u.Description)
	}
	if u.IsPublic != nil {
		q = q.Set("is_public", *u.IsPublic)
	}
	if u.EntryID != nil {
		if *u.EntryID == "" {
			q = q.Set("entry_id", nil)
		} else {
			q = q.Set("entry_id", *u.EntryID)
		}
	}

	q = q.Where(sq.Eq{"id": id, "user_id": userID})

	return q.ToSql()
}

func buildUpdateProfileQuery(userID string, u models.ProfileUpdate, now time.Time) (string, []any, error) {
	q := psql.Update("users").Set("updated_at", now)

	if u.Name != nil {
		q = q.Set("name", *u.Name)
	}
	if u.Avatar != nil {
		q = q.Set("avatar", *u.Avatar)
	}
	if u.Bio != nil {
		q = q.Set("bio", *u.Bio)
	}
	if u.GitHubURL != nil {
		q = q.Set("github_url", *u.GitHubURL)
	}
	if u.LinkedinURL != nil {
		q = q.Set("linkedin_url", *u.LinkedinURL)
	}

	q = q.Where(sq.Eq{"id": userID})

	return q.ToSql()
}

func buildFindTagsByNamesQuery(names []string) (string, []any, error) {
	return psql.Select("id, name, created_at").
		From("tags").
		Where(sq.Eq{"name": names}).
		OrderBy("name ASC").
		ToSql()
}

func buildDetachTagsQuery(entryID string, tagIDs []string) (string, []any, error) {
	return psql.Delete("entry_tags").
		Where(sq.Eq{"entry_id": entryID}).
		Where(sq.Eq{"tag_id": tagIDs}).
		ToSql()
}
