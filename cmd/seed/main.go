package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amowaisusmani/student-management-backend/internal/config"
	"github.com/amowaisusmani/student-management-backend/internal/database"
	"github.com/amowaisusmani/student-management-backend/internal/logger"
	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	examRepo := repository.NewExamRepository(pool)
	resultRepo := repository.NewResultRepository(pool)

	studentService := service.NewStudentService(studentRepo, cfg.DefaultPageSize)
	courseService := service.NewCourseService(courseRepo, cfg.DefaultPageSize)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, cfg.DefaultPageSize)
	attendanceService := service.NewAttendanceService(attendanceRepo, cfg.DefaultPageSize)
	examService := service.NewExamService(examRepo, cfg.DefaultPageSize)
	resultService := service.NewResultService(resultRepo, cfg.DefaultPageSize)

	fmt.Println("=== Seeding Sample Data ===")

	// ─── Courses ───────────────────────────────────────────────────────
	courseNames := []string{"Mathematics", "Physics", "Chemistry", "Biology", "Computer Science", "English"}
	courseIDs := make([]int64, 0, len(courseNames))
	for _, name := range courseNames {
		course := &model.Course{CourseName: name}
		if err := courseService.Create(ctx, course); err != nil {
			if errors.Is(err, repository.ErrDuplicateCourseName) {
				fmt.Printf("Course %q already exists, skipping\n", name)
				continue
			}
			log.Fatal().Err(err).Str("course", name).Msg("Failed to create course")
		}
		courseIDs = append(courseIDs, course.ID)
	}
	fmt.Printf("Created %d courses\n", len(courseIDs))

	// ─── Students ──────────────────────────────────────────────────────
	names := [][2]string{
		{"Aarav", "Sharma"}, {"Diya", "Patel"}, {"Vivaan", "Reddy"}, {"Ananya", "Gupta"},
		{"Aditya", "Singh"}, {"Ishita", "Kumar"}, {"Arjun", "Mehta"}, {"Sneha", "Joshi"},
		{"Rohan", "Verma"}, {"Priya", "Nair"}, {"Kabir", "Iyer"}, {"Meera", "Desai"},
		{"Dhruv", "Chopra"}, {"Tanvi", "Malhotra"}, {"Yash", "Bhatia"}, {"Kavya", "Rao"},
		{"Siddharth", "Menon"}, {"Riya", "Saxena"}, {"Aryan", "Kapoor"}, {"Nisha", "Pillai"},
		{"Manav", "Trivedi"}, {"Pooja", "Bansal"}, {"Karan", "Agarwal"}, {"Shreya", "Mishra"},
		{"Nikhil", "Chauhan"}, {"Anjali", "Sinha"}, {"Varun", "Thakur"}, {"Divya", "Kulkarni"},
		{"Rahul", "Pandey"}, {"Swati", "Bose"},
	}

	studentIDs := make([]int64, 0, len(names))
	for i, n := range names {
		gender := model.GenderMale
		if i%2 != 0 {
			gender = model.GenderFemale
		}

		student := &model.Student{
			RollNo:      fmt.Sprintf("R%03d", i+1),
			FirstName:   n[0],
			LastName:    n[1],
			Gender:      gender,
			DOB:         time.Date(2005, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC),
			Phone:       fmt.Sprintf("98765432%02d", i),
			Email:       fmt.Sprintf("%s.%s%d@example.com", n[0], n[1], i+1),
			AddressLine: fmt.Sprintf("%d MG Road, Bengaluru", i+1),
		}

		if err := studentService.Create(ctx, student); err != nil {
			fmt.Printf("Error creating student %s %s (roll: %s): %v\n", student.FirstName, student.LastName, student.RollNo, err)
			continue
		}
		studentIDs = append(studentIDs, student.ID)
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d students...\n", i+1)
		}
	}
	fmt.Printf("Created %d students\n", len(studentIDs))

	if len(studentIDs) == 0 || len(courseIDs) == 0 {
		fmt.Println("\nNothing new to enroll, seed finished.")
		return
	}

	// ─── Enrollments ───────────────────────────────────────────────────
	enrollCount := 0
	for i, studentID := range studentIDs {
		// Each student takes three courses.
		for j := 0; j < 3; j++ {
			enrollment := &model.Enrollment{
				StudentID: studentID,
				CourseID:  courseIDs[(i+j)%len(courseIDs)],
			}
			if err := enrollmentService.Create(ctx, enrollment); err != nil {
				fmt.Printf("Error enrolling student %d in course %d: %v\n", enrollment.StudentID, enrollment.CourseID, err)
				continue
			}
			enrollCount++
		}
	}
	fmt.Printf("Created %d enrollments\n", enrollCount)

	// ─── Attendance ────────────────────────────────────────────────────
	attendanceCount := 0
	baseDate := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	for i, studentID := range studentIDs {
		status := model.AttendancePresent
		if i%7 == 0 {
			status = model.AttendanceAbsent
		}
		record := &model.Attendance{
			StudentID: studentID,
			CourseID:  courseIDs[i%len(courseIDs)],
			Status:    status,
			Date:      baseDate.AddDate(0, 0, i%5),
		}
		if err := attendanceService.Create(ctx, record); err != nil {
			fmt.Printf("Error recording attendance for student %d: %v\n", studentID, err)
			continue
		}
		attendanceCount++
	}
	fmt.Printf("Created %d attendance records\n", attendanceCount)

	// ─── Exams & Results ───────────────────────────────────────────────
	examIDs := make([]int64, 0, len(courseIDs)*2)
	for _, courseID := range courseIDs {
		for _, examType := range []model.ExamType{model.ExamHalfYearly, model.ExamFinalTerm} {
			examDate := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
			if examType == model.ExamFinalTerm {
				examDate = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
			}
			exam := &model.Exam{
				CourseID: courseID,
				ExamType: examType,
				ExamDate: examDate,
			}
			if err := examService.Create(ctx, exam); err != nil {
				fmt.Printf("Error creating %s exam for course %d: %v\n", examType, courseID, err)
				continue
			}
			examIDs = append(examIDs, exam.ID)
		}
	}
	fmt.Printf("Created %d exams\n", len(examIDs))

	resultCount := 0
	for i, studentID := range studentIDs {
		if len(examIDs) == 0 {
			break
		}
		result := &model.Result{
			StudentID:     studentID,
			ExamID:        examIDs[i%len(examIDs)],
			MarksObtained: float64(45 + i%55),
			TotalMarks:    100,
		}
		if err := resultService.Create(ctx, result); err != nil {
			fmt.Printf("Error recording result for student %d: %v\n", studentID, err)
			continue
		}
		resultCount++
	}
	fmt.Printf("Created %d results\n", resultCount)

	fmt.Println("\nSeed completed!")
}
