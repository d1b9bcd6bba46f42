package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/skills"
)

const (
	skillColumns     = `s.id, s.name, s.category, s.description`
	userSkillColumns = `us.id, us.user_id, us.skill_id, us.level, us.verified, us.created_at`
	pathColumns      = `id, user_id, title, description, category, total_modules, completed_modules,
		estimated_hours, is_active, created_at, updated_at`
	badgeColumns = `id, user_id, name, description, icon, category, earned_at`
)

func scanSkill(row scanner) (skills.Skill, error) {
	var sk skills.Skill
	err := row.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Description)
	return sk, err
}

func scanUserSkill(row scanner) (skills.UserSkill, error) {
	var (
		us skills.UserSkill
		sk skills.Skill
	)
	err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.Level, &us.Verified, &us.CreatedAt,
		&sk.ID, &sk.Name, &sk.Category, &sk.Description)
	us.Skill = &sk
	return us, err
}

func scanPath(row scanner) (skills.LearningPath, error) {
	var p skills.LearningPath
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Category, &p.TotalModules,
		&p.CompletedModules, &p.EstimatedHours, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanBadge(row scanner) (skills.Badge, error) {
	var b skills.Badge
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.Description, &b.Icon, &b.Category, &b.EarnedAt)
	return b, err
}

func (s *Store) ListSkills(ctx context.Context) ([]skills.Skill, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+skillColumns+` FROM skills s ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSkill)
}

func (s *Store) GetSkill(ctx context.Context, id uuid.UUID) (skills.Skill, error) {
	sk, err := scanSkill(s.pool.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills s WHERE s.id = $1`, id))
	return sk, mapErr(err)
}

func (s *Store) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skills.UserSkill, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+userSkillColumns+`, `+skillColumns+`
		FROM user_skills us JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY s.name`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUserSkill)
}

func (s *Store) AddUserSkill(ctx context.Context, us skills.UserSkill) (skills.UserSkill, error) {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}
	out, err := scanUserSkill(s.pool.QueryRow(ctx, `
		WITH us AS (
			INSERT INTO user_skills (id, user_id, skill_id, level, verified)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT `+userSkillColumns+`, `+skillColumns+`
		FROM us JOIN skills s ON s.id = us.skill_id`,
		us.ID, us.UserID, us.SkillID, string(us.Level), us.Verified))
	return out, mapErr(err)
}

func (s *Store) ListLearningPaths(ctx context.Context, userID uuid.UUID) ([]skills.LearningPath, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+pathColumns+` FROM learning_paths
		WHERE user_id = $1 AND is_active
		ORDER BY updated_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPath)
}

func (s *Store) CreateLearningPath(ctx context.Context, p skills.LearningPath) (skills.LearningPath, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	out, err := scanPath(s.pool.QueryRow(ctx, `
		INSERT INTO learning_paths (id, user_id, title, description, category, total_modules,
			completed_modules, estimated_hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+pathColumns,
		p.ID, p.UserID, p.Title, p.Description, p.Category, p.TotalModules,
		p.CompletedModules, p.EstimatedHours, p.IsActive))
	return out, mapErr(err)
}

func (s *Store) GetLearningPath(ctx context.Context, id uuid.UUID) (skills.LearningPath, error) {
	out, err := scanPath(s.pool.QueryRow(ctx, `SELECT `+pathColumns+` FROM learning_paths WHERE id = $1`, id))
	return out, mapErr(err)
}

func (s *Store) UpdateLearningPathProgress(ctx context.Context, id uuid.UUID, completed int) (skills.LearningPath, error) {
	out, err := scanPath(s.pool.QueryRow(ctx, `
		UPDATE learning_paths SET
			completed_modules = LEAST(GREATEST($2, 0), total_modules),
			updated_at = now()
		WHERE id = $1
		RETURNING `+pathColumns, id, completed))
	return out, mapErr(err)
}

func (s *Store) ListBadges(ctx context.Context, userID uuid.UUID) ([]skills.Badge, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+badgeColumns+` FROM badges
		WHERE user_id = $1
		ORDER BY earned_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBadge)
}
