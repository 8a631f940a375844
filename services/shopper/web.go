package shopper

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/sereneshop/storefront/lib/mycontext"
	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/myhttp"
	"github.com/sereneshop/storefront/services/shopper/shopperevents"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/signup", s.signupPage()).Methods("POST")
	router.HandleFunc("/login", s.loginPage()).Methods("POST")
	router.HandleFunc("/logout", s.logoutPage()).Methods("POST")
	router.HandleFunc("/account", s.accountPage()).Methods("GET")

	err := s.publisher.CreateTopic(c, shopperevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", shopperevents.TopicName, err)
	}

	return nil
}

type signupForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (s *service) signupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		request := signupForm{}
		err = formcodec.NewDecoder().Decode(&request, r.Form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("error decoding form: %s", err))
			return
		}
		if request.Name == "" || request.Email == "" || request.Password == "" {
			responseWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("name, email and password are all required"))
			return
		}

		profile, err := s.signup(c, request.Name, request.Email, request.Password)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, profile)
	}
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (s *service) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		request := loginForm{}
		err = formcodec.NewDecoder().Decode(&request, r.Form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("error decoding form: %s", err))
			return
		}

		profile, err := s.login(c, request.Email, request.Password)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, profile)
	}
}

func (s *service) logoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.logout(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

func (s *service) accountPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		profile, signedIn, err := s.currentAccount(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}
		if !signedIn {
			responseWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("nobody is signed in")))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, profile)
	}
}
