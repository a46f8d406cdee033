// Package seed loads demo restaurants and clients from a YAML fixture.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"orderdesk/internal/core/application/usecases/commands"

	"gopkg.in/yaml.v3"
)

type Restaurant struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
}

type Client struct {
	Name    string `yaml:"name"`
	Surname string `yaml:"surname"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
}

// Fixture is the document read by Load.
//
//	restaurants:
//	  - name: Green Fork
//	    address: 1 Market Street
//	    phone: "+1 555 010 0100"
//	clients:
//	  - name: Ada
//	    surname: Lovelace
//	    address: 12 Analytical Row
//	    phone: "+44 20 7946 0000"
type Fixture struct {
	Restaurants []Restaurant `yaml:"restaurants"`
	Clients     []Client     `yaml:"clients"`
}

// Load decodes a fixture, rejecting unknown keys.
func Load(r io.Reader) (Fixture, error) {
	var fixture Fixture

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("cant decode seed fixture: %w", err)
	}

	return fixture, nil
}

type createRestaurantHandler interface {
	Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) error
}

type createClientHandler interface {
	Handle(ctx context.Context, cmd commands.CreateClientCommand) error
}

// Seeder creates fixture entries through the regular commands, so they are
// validated like any API input.
type Seeder struct {
	createRestaurant createRestaurantHandler
	createClient     createClientHandler
}

func NewSeeder(createRestaurant createRestaurantHandler, createClient createClientHandler) Seeder {
	return Seeder{createRestaurant: createRestaurant, createClient: createClient}
}

// Result counts the created entries.
type Result struct {
	Restaurants int
	Clients     int
}

// Apply creates every entry it can and reports the failures together.
func (s Seeder) Apply(ctx context.Context, fixture Fixture) (Result, error) {
	var (
		result   Result
		failures []error
	)

	for i, r := range fixture.Restaurants {
		cmd, err := commands.NewCreateRestaurantCommand(r.Name, r.Address, r.Phone)
		if err == nil {
			err = s.createRestaurant.Handle(ctx, cmd)
		}
		if err != nil {
			failures = append(failures, fmt.Errorf("restaurant %d (%s): %w", i, r.Name, err))
			continue
		}
		result.Restaurants++
	}

	for i, c := range fixture.Clients {
		cmd, err := commands.NewCreateClientCommand(c.Name, c.Surname, c.Address, c.Phone)
		if err == nil {
			err = s.createClient.Handle(ctx, cmd)
		}
		if err != nil {
			failures = append(failures, fmt.Errorf("client %d (%s %s): %w", i, c.Name, c.Surname, err))
			continue
		}
		result.Clients++
	}

	return result, errors.Join(failures...)
}
