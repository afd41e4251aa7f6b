package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amowaisusmani/student-management-backend/internal/config"
	"github.com/amowaisusmani/student-management-backend/internal/database"
	"github.com/amowaisusmani/student-management-backend/internal/logger"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/service"
)

var entities = []string{"students", "courses", "enrollments", "attendance", "exams", "results"}

func main() {
	var entity string
	var outDir string
	flag.StringVar(&entity, "entity", "all", "Entity to export (students|courses|enrollments|attendance|exams|results|all)")
	flag.StringVar(&outDir, "dir", "", "Output directory (defaults to EXPORT_DIR)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if outDir == "" {
		outDir = cfg.ExportDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentService := service.NewStudentService(repository.NewStudentRepository(pool), cfg.DefaultPageSize)
	courseService := service.NewCourseService(repository.NewCourseRepository(pool), cfg.DefaultPageSize)
	enrollmentService := service.NewEnrollmentService(repository.NewEnrollmentRepository(pool), cfg.DefaultPageSize)
	attendanceService := service.NewAttendanceService(repository.NewAttendanceRepository(pool), cfg.DefaultPageSize)
	examService := service.NewExamService(repository.NewExamRepository(pool), cfg.DefaultPageSize)
	resultService := service.NewResultService(repository.NewResultRepository(pool), cfg.DefaultPageSize)

	exportService := service.NewExportService(
		studentService, courseService, enrollmentService,
		attendanceService, examService, resultService, log,
	)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", outDir).Msg("Failed to create output directory")
	}

	targets := entities
	if entity != "all" {
		targets = []string{entity}
	}

	for _, name := range targets {
		path := filepath.Join(outDir, name+".csv")
		if err := exportService.ExportFile(ctx, name, path); err != nil {
			if errors.Is(err, service.ErrUnknownEntity) {
				fmt.Printf("Unknown entity %q (use one of %v)\n", name, entities)
				os.Exit(1)
			}
			log.Fatal().Err(err).Str("entity", name).Msg("Export failed")
		}
		fmt.Printf("Exported %s to %s\n", name, path)
	}
}
