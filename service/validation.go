package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"tourhub/helper"
	"tourhub/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseISODate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

var isoLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseISODate accepts a calendar date or a full RFC 3339 timestamp.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date", s)
}

// check runs the tag rules on input and collects every failure.
func check(input any) *ValidationError {
	ve := &ValidationError{}
	err := validate.Struct(input)
	if err == nil {
		return ve
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("body", err.Error())
		return ve
	}
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), describe(fe))
	}
	return ve
}

func describe(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "e164":
		return "must be a phone number in international format"
	case "isodate":
		return "must be an ISO-8601 date"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param() + unit
	case "max", "lte":
		return "must be at most " + fe.Param() + unit
	}
	return "is invalid"
}

func ValidateBookingInput(in model.CreateBookingInput) error {
	return check(in).OrNil()
}

func ValidateBookingPatch(p model.BookingPatch) error {
	return check(p).OrNil()
}

func ValidateBookingFilter(f model.BookingFilter) error {
	ve := check(f)
	if f.Status != "" && f.Status != "all" && !model.BookingStatus(f.Status).IsValid() {
		ve.Add("status", "must be one of: all pending confirmed completed cancelled")
	}
	return ve.OrNil()
}

func ValidateTourInput(in model.TourInput) error {
	ve := check(in)
	checkPrices(ve, in.BasePrice, in.SalePrice)
	return ve.OrNil()
}

func ValidateTourPatch(p model.TourPatch) error {
	ve := check(p)
	if p.BasePrice != nil && p.BasePrice.IsNegative() {
		ve.Add("base_price", "must be at least 0")
	}
	if p.SalePrice != nil && p.SalePrice.IsNegative() {
		ve.Add("sale_price", "must be at least 0")
	}
	return ve.OrNil()
}

func checkPrices(ve *ValidationError, base decimal.Decimal, sale *decimal.Decimal) {
	if base.IsNegative() {
		ve.Add("base_price", "must be at least 0")
	}
	if sale == nil {
		return
	}
	if sale.IsNegative() {
		ve.Add("sale_price", "must be at least 0")
	} else if sale.IsPositive() && sale.GreaterThanOrEqual(base) {
		ve.Add("sale_price", "must be lower than base_price")
	}
}

func ValidateCategoryInput(in model.CategoryInput) error {
	return check(in).OrNil()
}

func ValidateCategoryPatch(p model.CategoryPatch) error {
	return check(p).OrNil()
}

func ValidateBlogPostInput(in model.BlogPostInput) error {
	ve := check(in)
	if in.Slug != "" && !helper.IsSlug(in.Slug) {
		ve.Add("slug", "must contain only lowercase letters, digits and hyphens")
	}
	return ve.OrNil()
}

func ValidateBlogPostPatch(p model.BlogPostPatch) error {
	ve := check(p)
	if p.Slug != nil && *p.Slug != "" && !helper.IsSlug(*p.Slug) {
		ve.Add("slug", "must contain only lowercase letters, digits and hyphens")
	}
	return ve.OrNil()
}

func ValidateContactInput(in model.ContactInput) error {
	return check(in).OrNil()
}

func ValidateContactReply(in model.ContactReplyInput) error {
	return check(in).OrNil()
}

func ValidateNewsletterInput(in model.NewsletterInput) error {
	return check(in).OrNil()
}

func ValidateLoginInput(in model.LoginInput) error {
	return check(in).OrNil()
}

func ValidateAccountInput(in model.AccountInput) error {
	return check(in).OrNil()
}

func ValidateAccountPatch(p model.AccountPatch) error {
	return check(p).OrNil()
}

func ValidateRegisterInput(in model.RegisterInput) error {
	return check(in).OrNil()
}

func ValidateProfilePatch(p model.ProfilePatch) error {
	return check(p).OrNil()
}

func ValidateChangePassword(in model.ChangePasswordInput) error {
	ve := check(in)
	if in.NewPassword != "" && in.NewPassword == in.CurrentPassword {
		ve.Add("new_password", "must differ from the current password")
	}
	return ve.OrNil()
}

func ValidateContentInput(in model.ContentInput) error {
	return check(in).OrNil()
}
