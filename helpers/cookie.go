package helpers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/chmike/securecookie"
	"github.com/gin-gonic/gin"
)

// token cookie settings; MaxAge follows the refresh token lifetime
var cookieParams = securecookie.Params{
	Path:     "/",
	Domain:   "",
	MaxAge:   3600 * 24 * 7,
	HTTPOnly: true, // disallow access by remote javascript code
	Secure:   false,
	SameSite: securecookie.Lax,
}

// SetCookie sends a value to the client as a signed cookie
func SetCookie(c *gin.Context, name string, value interface{}) error {

	sck, err := securecookie.New(name, []byte(os.Getenv("JWTCK_HASHKEY")), cookieParams)
	if err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = sck.SetValue(c.Writer, b)
	if err != nil {
		return err
	}

	return nil
}

// GetCookie reads a signed cookie from a request
func GetCookie(r *http.Request, name string) (interface{}, error) {

	sck, err := securecookie.New(name, []byte(os.Getenv("JWTCK_HASHKEY")), cookieParams)
	if err != nil {
		return nil, err
	}

	val, err := sck.GetValue(nil, r)
	if err != nil {
		return nil, err
	}

	return val, nil
}

// DelCookie removes a cookie from the client
func DelCookie(c *gin.Context, name string) error {

	// a cookie is deleted by setting a negative MaxAge
	var cp = cookieParams
	cp.MaxAge = -1

	sck, err := securecookie.New(name, []byte(os.Getenv("JWTCK_HASHKEY")), cp)
	if err != nil {
		return err
	}

	err = sck.Delete(c.Writer)
	if err != nil {
		return err
	}

	return nil
}
