package handlers

import (
	"sync"
	"time"

	"github.com/SscSPs/hisab_kitab/internal/core/domain"
	"github.com/SscSPs/hisab_kitab/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by the DTOs to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("yearmonth", validateYearMonth)
		_ = v.RegisterValidation("payment_status", validatePaymentStatus)
	})
}

// yearmonth: "2024-03"
func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(dto.MonthLayout, fl.Field().String())
	return err == nil
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParsePaymentStatus(fl.Field().String())
	return err == nil
}
