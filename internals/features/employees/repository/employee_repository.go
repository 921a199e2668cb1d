// internals/features/employees/repository/employee_repository.go
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
)

/* ====================== EMPLOYEE ====================== */

func FindByEmailOrEmployeeID(db *gorm.DB, identifier string) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := db.Where("work_email = ? OR employee_id = ?", identifier, identifier).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func FindByEmail(db *gorm.DB, email string) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := db.Where("work_email = ?", email).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func FindByEmployeeID(db *gorm.DB, employeeID string) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := db.Where("employee_id = ?", employeeID).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func ListAll(db *gorm.DB) ([]model.EmployeeModel, error) {
	var emps []model.EmployeeModel
	if err := db.Order("employee_id").Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func Create(db *gorm.DB, emp *model.EmployeeModel) error {
	return db.Create(emp).Error
}

func UpdatePasswordByEmail(db *gorm.DB, email, hash string) error {
	res := db.Model(&model.EmployeeModel{}).
		Where("work_email = ?", email).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ====================== EMPLOYEE ID SEQUENCE ====================== */

const (
	employeeIDPrefix = "GTS"
	employeeSequence = "employee_id"
	employeeSeqStart = 240
)

// NextEmployeeID mints the next business-facing employee ID. The counter
// lives in the sequences table and is advanced inside a transaction, so it
// survives restarts and concurrent signups cannot observe the same value.
func NextEmployeeID(db *gorm.DB) (string, error) {
	var next int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var seq model.SequenceModel
		if err := tx.First(&seq, "name = ?", employeeSequence).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			seq = model.SequenceModel{Name: employeeSequence, Value: employeeSeqStart}
			if err := tx.Create(&seq).Error; err != nil {
				return err
			}
		}
		next = seq.Value + 1
		return tx.Model(&model.SequenceModel{}).
			Where("name = ?", employeeSequence).
			Update("value", next).Error
	})
	if err != nil {
		return "", err
	}
	return FormatEmployeeID(next), nil
}

func FormatEmployeeID(n int64) string {
	return fmt.Sprintf("%s%d", employeeIDPrefix, n)
}
