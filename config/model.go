/*
 * MIT License
 *
 * Copyright (c) 2024 Salim Abouaram
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package config

import (
	"fmt"
	"path/filepath"

	libval "github.com/go-playground/validator/v10"
	liberr "github.com/nabbar/golib/errors"
)

// Config is the validated server configuration.
type Config struct {
	// Base is the absolute path of the served directory.
	Base string `validate:"required,dir"`

	// Port is the listening port.
	Port uint16 `validate:"required"`

	// Users maps usernames to their clear-text passwords.
	Users map[string]string
}

// TempDir returns the temporary directory excluded from the cache.
func (c *Config) TempDir() string {
	return filepath.Join(c.Base, ".tmp")
}

// UserExists tells whether a username is configured.
func (c *Config) UserExists(user string) bool {
	_, ok := c.Users[user]
	return ok
}

// ValidPassword checks one credential pair.
func (c *Config) ValidPassword(user, pwd string) bool {
	p, ok := c.Users[user]
	return ok && p == pwd
}

// Validate checks the config struct against its constraints.
func (c *Config) Validate() liberr.Error {
	e := ErrorValidator.Error(nil)

	if err := libval.New().Struct(c); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		} else if ers, ok := err.(libval.ValidationErrors); ok {
			for _, er := range ers {
				//nolint #goerr113
				e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
			}
		} else {
			e.Add(err)
		}
	}

	if !e.HasParent() {
		e = nil
	}

	return e
}
