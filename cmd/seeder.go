package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"attendance", "salaries", "users", "employees"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		employees := []struct {
			FirstName  string
			LastName   string
			Email      string
			Phone      string
			Department string
			Role       string
			Username   string
		}{
			{"Arif", "Wirawan", "arif@mail.com", "081200000001", "Management", "admin", "arif"},
			{"Sinta", "Dewi", "sinta@mail.com", "081200000002", "Engineering", "staff", "sinta"},
			{"Budi", "Santoso", "budi@mail.com", "081200000003", "Finance", "staff", "budi"},
		}

		for _, e := range employees {
			var empID int64
			row := db.Raw("SELECT emp_id FROM employees WHERE email = ?", e.Email).Row()
			if err := row.Scan(&empID); err != nil {
				err := db.Exec(
					`INSERT INTO employees (first_name, last_name, email, phone, department, role, status, created_at, updated_at)
					 VALUES (?, ?, ?, ?, ?, ?, 'active', now(), now())`,
					e.FirstName, e.LastName, e.Email, e.Phone, e.Department, e.Role).Error
				if err != nil {
					log.Fatalf("failed to insert employee %s: %v", e.Email, err)
				}
				if err := db.Raw("SELECT emp_id FROM employees WHERE email = ?", e.Email).Row().Scan(&empID); err != nil {
					log.Fatalf("failed to lookup employee %s: %v", e.Email, err)
				}
				fmt.Println("Seeded employee:", e.Email)
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM users WHERE emp_id = ?", empID).Row().Scan(&exists); err != nil {
				err := db.Exec(
					`INSERT INTO users (emp_id, username, password_hash, role, created_at)
					 VALUES (?, ?, ?, ?, now())`,
					empID, e.Username, string(hash), e.Role).Error
				if err != nil {
					log.Fatalf("failed to insert user %s: %v", e.Username, err)
				}
				fmt.Println("Seeded user:", e.Username)
			}

			seedSalary(db, empID)
		}

		fmt.Println("Seeding complete; all accounts use password:", password)
	},
}

func seedSalary(db *gorm.DB, empID int64) {
	var exists int
	if err := db.Raw(
		`SELECT 1 FROM salaries WHERE emp_id = ?
		 AND EXTRACT(YEAR FROM created_at) = ? AND EXTRACT(MONTH FROM created_at) = ?`,
		empID, time.Now().Year(), int(time.Now().Month())).Row().Scan(&exists); err == nil {
		return
	}

	err := db.Exec(
		`INSERT INTO salaries (emp_id, base_salary, bonus, deductions, paid_status, created_at)
		 VALUES (?, 5000000, 500000, 250000, 'unpaid', now())`, empID).Error
	if err != nil {
		log.Fatalf("failed to insert salary for emp %d: %v", empID, err)
	}
	fmt.Println("Seeded salary for employee:", empID)
}
