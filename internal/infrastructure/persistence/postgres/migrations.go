package postgres

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 001: PEOPLE AND ADMISSION
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
-- Migration: Create people, applicants, and pre-registration forms
-- Version: 001

CREATE TABLE IF NOT EXISTS people (
    id UUID PRIMARY KEY,
    name VARCHAR(120) NOT NULL,
    email VARCHAR(120) NOT NULL UNIQUE,
    password_hash VARCHAR(100) NOT NULL DEFAULT '',
    role VARCHAR(20) NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    must_change_password BOOLEAN NOT NULL DEFAULT FALSE,
    temporary_hash VARCHAR(100) NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_role CHECK (role IN ('administrator', 'teacher', 'guardian', 'applicant'))
);

CREATE INDEX IF NOT EXISTS idx_people_email ON people(email);
CREATE INDEX IF NOT EXISTS idx_people_role ON people(role);

CREATE TABLE IF NOT EXISTS applicants (
    id UUID PRIMARY KEY,
    person_id UUID NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    state VARCHAR(30) NOT NULL DEFAULT 'unreviewed',
    interview_date TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_state CHECK (state IN ('unreviewed', 'reviewed', 'awaiting_interview', 'approved', 'rejected'))
);

CREATE INDEX IF NOT EXISTS idx_applicants_person_id ON applicants(person_id);
CREATE INDEX IF NOT EXISTS idx_applicants_state ON applicants(state);

CREATE TABLE IF NOT EXISTS preregistration_forms (
    id UUID PRIMARY KEY,
    applicant_id UUID NOT NULL UNIQUE REFERENCES applicants(id) ON DELETE CASCADE,
    guardian_name VARCHAR(100) NOT NULL,
    guardian_surname VARCHAR(100) NOT NULL DEFAULT '',
    guardian_phone VARCHAR(30) NOT NULL DEFAULT '',
    guardian_email VARCHAR(120) NOT NULL,
    child_name VARCHAR(100) NOT NULL,
    child_surname VARCHAR(100) NOT NULL DEFAULT '',
    desired_grade VARCHAR(50) NOT NULL DEFAULT '',
    birth_date DATE,
    civil_registry VARCHAR(50) NOT NULL DEFAULT '',
    allergies TEXT NOT NULL DEFAULT '',
    medical_conditions TEXT NOT NULL DEFAULT '',
    medications TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const migration001Down = `
DROP TABLE IF EXISTS preregistration_forms;
DROP TABLE IF EXISTS applicants;
DROP TABLE IF EXISTS people;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 002: STUDENTS AND GROUPS
// ══════════════════════════════════════════════════════════════════════════════

const migration002Up = `
-- Migration: Create students and groups
-- Version: 002

CREATE TABLE IF NOT EXISTS groups (
    id UUID PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    grade_level VARCHAR(50) NOT NULL,
    capacity INTEGER NOT NULL DEFAULT 20,
    lifecycle VARCHAR(20) NOT NULL DEFAULT 'draft',
    teacher_id UUID NOT NULL REFERENCES people(id),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_capacity CHECK (capacity >= 1 AND capacity <= 20),
    CONSTRAINT valid_lifecycle CHECK (lifecycle IN ('draft', 'active'))
);

CREATE INDEX IF NOT EXISTS idx_groups_teacher_id ON groups(teacher_id);
CREATE INDEX IF NOT EXISTS idx_groups_lifecycle ON groups(lifecycle);

CREATE TABLE IF NOT EXISTS students (
    id UUID PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    surname VARCHAR(100) NOT NULL DEFAULT '',
    grade_level VARCHAR(50) NOT NULL,
    civil_registry VARCHAR(50) NOT NULL DEFAULT '',
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    guardian_id UUID REFERENCES people(id),
    group_id UUID REFERENCES groups(id),
    applicant_id UUID REFERENCES applicants(id),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_status CHECK (status IN ('active', 'inactive', 'withdrawn')),
    -- A student never belongs to a group and an application at once.
    CONSTRAINT grouped_or_prospect CHECK (group_id IS NULL OR applicant_id IS NULL)
);

CREATE INDEX IF NOT EXISTS idx_students_guardian_id ON students(guardian_id);
CREATE INDEX IF NOT EXISTS idx_students_group_id ON students(group_id);
CREATE INDEX IF NOT EXISTS idx_students_applicant_id ON students(applicant_id);
`

const migration002Down = `
DROP TABLE IF EXISTS students;
DROP TABLE IF EXISTS groups;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 003: ASSESSMENT
// ══════════════════════════════════════════════════════════════════════════════

const migration003Up = `
-- Migration: Create achievements, grades, and observations
-- Version: 003

CREATE TABLE IF NOT EXISTS achievements (
    id UUID PRIMARY KEY,
    name VARCHAR(200) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category VARCHAR(30) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_category CHECK (category IN ('personal_social', 'cognitive_language', 'motor_skills')),
    CONSTRAINT valid_achievement_status CHECK (status IN ('active', 'disabled'))
);

CREATE INDEX IF NOT EXISTS idx_achievements_category ON achievements(category);

CREATE TABLE IF NOT EXISTS grades (
    id UUID PRIMARY KEY,
    value NUMERIC(3,1) NOT NULL,
    period INTEGER NOT NULL,
    achievement_id UUID NOT NULL REFERENCES achievements(id),
    student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
    teacher_id UUID NOT NULL REFERENCES people(id),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_value CHECK (value >= 1.0 AND value <= 5.0),
    CONSTRAINT valid_period CHECK (period >= 1)
);

CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id);
CREATE INDEX IF NOT EXISTS idx_grades_student_period ON grades(student_id, period);
CREATE INDEX IF NOT EXISTS idx_grades_teacher_id ON grades(teacher_id);

CREATE TABLE IF NOT EXISTS observations (
    id UUID PRIMARY KEY,
    date TIMESTAMP WITH TIME ZONE NOT NULL,
    description TEXT NOT NULL,
    type VARCHAR(30) NOT NULL,
    student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
    teacher_id UUID NOT NULL REFERENCES people(id),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_type CHECK (type IN ('academic', 'disciplinary', 'conduct', 'outstanding'))
);

CREATE INDEX IF NOT EXISTS idx_observations_student_id ON observations(student_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_observations_teacher_id ON observations(teacher_id, created_at DESC);
`

const migration003Down = `
DROP TABLE IF EXISTS observations;
DROP TABLE IF EXISTS grades;
DROP TABLE IF EXISTS achievements;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 004: SUMMONSES
// ══════════════════════════════════════════════════════════════════════════════

const migration004Up = `
-- Migration: Create summonses and participant sets
-- Version: 004

CREATE TABLE IF NOT EXISTS summonses (
    id UUID PRIMARY KEY,
    type VARCHAR(30) NOT NULL,
    scheduled_at TIMESTAMP WITH TIME ZONE NOT NULL,
    reason TEXT NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_summons_type CHECK (type IN ('individual', 'group', 'applicant_review')),
    CONSTRAINT valid_summons_status CHECK (status IN ('pending', 'held', 'cancelled', 'postponed'))
);

CREATE INDEX IF NOT EXISTS idx_summonses_type ON summonses(type);
CREATE INDEX IF NOT EXISTS idx_summonses_status ON summonses(status);
CREATE INDEX IF NOT EXISTS idx_summonses_scheduled_at ON summonses(scheduled_at);

CREATE TABLE IF NOT EXISTS summons_guardians (
    summons_id UUID NOT NULL REFERENCES summonses(id) ON DELETE CASCADE,
    guardian_id UUID NOT NULL REFERENCES people(id),
    position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (summons_id, guardian_id)
);

CREATE TABLE IF NOT EXISTS summons_teachers (
    summons_id UUID NOT NULL REFERENCES summonses(id) ON DELETE CASCADE,
    teacher_id UUID NOT NULL REFERENCES people(id),
    position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (summons_id, teacher_id)
);

CREATE TABLE IF NOT EXISTS summons_applicants (
    summons_id UUID NOT NULL REFERENCES summonses(id) ON DELETE CASCADE,
    applicant_id UUID NOT NULL REFERENCES applicants(id),
    position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (summons_id, applicant_id)
);

CREATE INDEX IF NOT EXISTS idx_summons_guardians_guardian ON summons_guardians(guardian_id);
CREATE INDEX IF NOT EXISTS idx_summons_teachers_teacher ON summons_teachers(teacher_id);
`

const migration004Down = `
DROP TABLE IF EXISTS summons_applicants;
DROP TABLE IF EXISTS summons_teachers;
DROP TABLE IF EXISTS summons_guardians;
DROP TABLE IF EXISTS summonses;
`

// GetMigrations returns all embedded migrations.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_people_admission",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "create_students_groups",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
		{
			Version: 3,
			Name:    "create_assessment",
			UpSQL:   migration003Up,
			DownSQL: migration003Down,
		},
		{
			Version: 4,
			Name:    "create_summonses",
			UpSQL:   migration004Up,
			DownSQL: migration004Down,
		},
	}
}
