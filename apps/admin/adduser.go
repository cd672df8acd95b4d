package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(name, email, pwd string, isAdmin bool) error {
	ctx := context.Background()
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)

	role := user.RoleTeacher
	if isAdmin {
		role = user.RoleAdmin
	}
	usr := user.User{
		ID:                 uuid.New().String(), // kept only on create
		Name:               name,
		Email:              email,
		Role:               role,
		LanguagePreference: core.DefaultLanguage,
		CreatedAt:          time.Now().UTC(),
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	if _, err := cli.usrRepo.UpdateOrCreateUser(ctx, usr); err != nil {
		return err
	}
	return nil
}
