package utils

import (
	"log"

	"github.com/remivalade/MintMyMood/database"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("mood", ValidateMood); err != nil {
		log.Fatal(err)
	}
	if err := validate.RegisterValidation("eth-addr", ValidateEthAddress); err != nil {
		log.Fatal(err)
	}
}

func ValidateMood(fl validator.FieldLevel) bool {
	return database.Mood(fl.Field().String()).Valid()
}

func ValidateEthAddress(fl validator.FieldLevel) bool {
	return common.IsHexAddress(fl.Field().String())
}
