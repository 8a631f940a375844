package shopper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/mylog"
	"github.com/sereneshop/storefront/services/shopper/shopperevents"
)

// currentAccountKey mirrors the signed-in profile so it survives a restart.
const currentAccountKey = "sereneCurrentUser"

func (s *service) signup(c context.Context, name, email, password string) (Profile, error) {
	s.logger.Log(c, email, mylog.SeverityInfo, "Signup for email %s", email)

	account := Account{
		UID:          s.uuider.Create(),
		Name:         name,
		Email:        email,
		PasswordHash: hashPassword(password),
		CreatedAt:    s.nower.Now(),
	}

	err := s.accountStore.RunInTransaction(c, func(c context.Context) error {
		_, exists, err := s.accountStore.Get(c, email)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if exists {
			return myerrors.NewInvalidInputErrorf("account with email %s already exists", email)
		}

		err = s.accountStore.Put(c, email, account)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, shopperevents.TopicName, shopperevents.AccountCreated{
			AccountUID: account.UID,
			Email:      email,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Profile{}, err
	}

	// Signing up signs you in
	err = s.rememberCurrentAccount(c, account.Profile())
	if err != nil {
		return Profile{}, err
	}

	return account.Profile(), nil
}

func (s *service) login(c context.Context, email, password string) (Profile, error) {
	s.logger.Log(c, email, mylog.SeverityInfo, "Login attempt for email %s", email)

	account, found, err := s.accountStore.Get(c, email)
	if err != nil {
		return Profile{}, myerrors.NewInternalError(err)
	}
	if !found || account.PasswordHash != hashPassword(password) {
		// Do not leak whether the email is known
		return Profile{}, myerrors.NewAuthenticationError(fmt.Errorf("invalid email or password"))
	}

	err = s.rememberCurrentAccount(c, account.Profile())
	if err != nil {
		return Profile{}, err
	}

	err = s.publisher.Publish(c, shopperevents.TopicName, shopperevents.AccountSignedIn{
		AccountUID: account.UID,
	})
	if err != nil {
		return Profile{}, myerrors.NewInternalError(err)
	}

	return account.Profile(), nil
}

func (s *service) logout(c context.Context) error {
	profile, signedIn, err := s.currentAccount(c)
	if err != nil {
		return err
	}
	if !signedIn {
		return nil
	}

	s.logger.Log(c, profile.UID, mylog.SeverityInfo, "Logout of account %s", profile.UID)

	err = s.keyStore.Delete(c, currentAccountKey)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.publisher.Publish(c, shopperevents.TopicName, shopperevents.AccountSignedOut{
		AccountUID: profile.UID,
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

func (s *service) currentAccount(c context.Context) (Profile, bool, error) {
	data, found, err := s.keyStore.Load(c, currentAccountKey)
	if err != nil {
		return Profile{}, false, myerrors.NewInternalError(err)
	}
	if !found {
		return Profile{}, false, nil
	}

	profile := Profile{}
	err = json.Unmarshal(data, &profile)
	if err != nil {
		// A corrupt document reads as signed out
		s.logger.Log(c, "", mylog.SeverityWarn, "Could not parse document under %s: %s", currentAccountKey, err)
		return Profile{}, false, nil
	}

	return profile, true, nil
}

func (s *service) rememberCurrentAccount(c context.Context, profile Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.keyStore.Save(c, currentAccountKey, data)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}
