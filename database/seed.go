package database

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // драйвер PostgreSQL

	"school-api/config"
)

// Генератор тестовых данных: 10 групп со случайными именами вида "xx_xx",
// 200 студентов, 10 курсов и связи студент-курс. Таблица связей с каскадами
// живет только здесь — ядро API про нее не знает.

var courseList = [][2]string{
	{"IT", "Computer science"},
	{"Math", "Mathematics"},
	{"Physics", "Physics"},
	{"Astronomy", "Astrophysics"},
	{"Med", "Medicine"},
	{"Geo", "Geography"},
	{"Bio", "Biology"},
	{"Econ", "Economics"},
	{"Eco", "Ecology"},
	{"Python", "Not recommended"},
}

var firstNames = []string{
	"Liam", "Olivia", "Noah", "Emma", "Oliver", "Charlotte",
	"Elijah", "Amelia", "James", "Ava", "William", "Sophia",
	"Benjamin", "Isabella", "Lucas", "Mia", "Henry", "Evelyn",
	"Theodore", "Harper",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis",
	"Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas",
	"Jackson", "White", "Harris", "Martin", "Thompson", "Garcia",
	"Martinez", "Robinson",
}

// Seed наполняет пустую базу тестовыми данными одной транзакцией.
// Если студенты уже есть, ничего не делает.
func Seed(cfg *config.Config) error {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("error connecting for seed: %v", err)
	}
	defer db.Close()

	var count int64
	if err := db.Get(&count, "SELECT COUNT(*) FROM students"); err != nil {
		return fmt.Errorf("error checking students: %v", err)
	}
	if count > 0 {
		log.Println("✅ Database already has data, skipping seed")
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("error starting seed transaction: %v", err)
	}
	defer tx.Rollback()

	groups := genGroupNames(10)
	for _, name := range groups {
		if _, err := tx.Exec("INSERT INTO groups(group_name) VALUES($1)", name); err != nil {
			return fmt.Errorf("error inserting group: %v", err)
		}
	}

	for _, course := range courseList {
		if _, err := tx.Exec(
			"INSERT INTO courses(course_name, description) VALUES($1, $2)",
			course[0], course[1]); err != nil {
			return fmt.Errorf("error inserting course: %v", err)
		}
	}

	studentIDs, err := insertStudents(tx, groups)
	if err != nil {
		return err
	}

	if err := linkStudentsCourses(tx, studentIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing seed: %v", err)
	}

	log.Printf("✅ Seeded %d groups, %d courses, %d students", len(groups), len(courseList), len(studentIDs))
	return nil
}

// genGroupNames возвращает n уникальных имен вида "ab_cd"
func genGroupNames(n int) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, n)
	for len(names) < n {
		name := randLetters(2) + "_" + randLetters(2)
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func randLetters(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[rand.Intn(len(letters))]
	}
	return string(out)
}

// groupSizes распределяет 200 студентов по 10 группам: 20 плюс-минус
// случайное отклонение, отклонения симметричны, сумма сохраняется
func groupSizes() []int {
	deviation := make([]int, 0, 10)
	for i := 0; i < 5; i++ {
		d := rand.Intn(11)
		deviation = append(deviation, d)
	}
	for i := 0; i < 5; i++ {
		deviation = append(deviation, -deviation[i])
	}
	sizes := make([]int, 10)
	for i := range sizes {
		sizes[i] = 20 + deviation[i]
	}
	return sizes
}

func insertStudents(tx *sqlx.Tx, groups []string) ([]int, error) {
	// уникальные пары имя-фамилия из декартова произведения
	pairs := make([][2]string, 0, len(firstNames)*len(lastNames))
	for _, f := range firstNames {
		for _, l := range lastNames {
			pairs = append(pairs, [2]string{f, l})
		}
	}
	rand.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	sizes := groupSizes()
	ids := make([]int, 0, 200)
	next := 0
	for gi, group := range groups {
		for i := 0; i < sizes[gi]; i++ {
			pair := pairs[next]
			next++
			var id int
			err := tx.QueryRow(
				"INSERT INTO students(first_name, last_name, group_id) VALUES($1, $2, $3) RETURNING student_id",
				pair[0], pair[1], group).Scan(&id)
			if err != nil {
				return nil, fmt.Errorf("error inserting student: %v", err)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// linkStudentsCourses создает таблицу связей и записывает каждому студенту
// от 1 до 3 случайных курсов
func linkStudentsCourses(tx *sqlx.Tx, studentIDs []int) error {
	createSQL := `
    CREATE TABLE IF NOT EXISTS students_courses (
        student_id integer REFERENCES students (student_id)
            ON UPDATE CASCADE ON DELETE CASCADE,
        course_name VARCHAR(40) REFERENCES courses (course_name)
            ON UPDATE CASCADE ON DELETE CASCADE,
        PRIMARY KEY (student_id, course_name)
    )`
	if _, err := tx.Exec(createSQL); err != nil {
		return fmt.Errorf("error creating students_courses: %v", err)
	}

	for _, id := range studentIDs {
		picked := rand.Perm(len(courseList))[:1+rand.Intn(3)]
		for _, ci := range picked {
			if _, err := tx.Exec(
				"INSERT INTO students_courses(student_id, course_name) VALUES($1, $2)",
				id, courseList[ci][0]); err != nil {
				return fmt.Errorf("error linking student to course: %v", err)
			}
		}
	}
	return nil
}
