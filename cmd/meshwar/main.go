// Command meshwar is a terminal client for the Meshwar ride-sharing API.
// It keeps a durable session on disk, so a login survives restarts the same
// way the web client's localStorage does.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/me4war/meshwar-client/internal/api"
	"github.com/me4war/meshwar-client/internal/config"
	"github.com/me4war/meshwar-client/internal/geocode"
	"github.com/me4war/meshwar-client/internal/lifecycle"
	"github.com/me4war/meshwar-client/internal/models"
	"github.com/me4war/meshwar-client/internal/session"
	"github.com/me4war/meshwar-client/internal/store"
)

const usage = `usage: meshwar <command> [flags]

session:
  login -email <e> -password <p>   authenticate and persist the session
  logout                           drop the persisted session
  whoami                           show the identity derived from the token

trips:
  trips [-from <city>] [-to <city>] [-date <yyyy-mm-dd>] [-page N]
  trip -id <tripId>                show a trip and the actions you may take
  create-trip -from <city> -to <city> -depart <time> -seats N -price P -car <id>
  start -id <tripId>               start a scheduled trip (driver)
  complete -id <tripId>            complete an in-progress trip (driver)
  cancel -id <tripId>              cancel a trip (driver)
  seats -id <tripId> -n <seats>    change available seats (driver)

bookings:
  book -trip <tripId> -seats N     request seats on a trip
  bookings -trip <tripId>          list pending bookings (driver)
  accept -booking <bookingId>      accept a pending booking (driver)
  reject -booking <id> -trip <id>  reject or cancel a booking (driver)
  cancel-booking -trip <tripId>    cancel your own recorded booking
  rate -trip <id> -to <userId> -rate <1-5> [-comment <text>]

suggestions:
  suggest -from <addr> -to <addr> -depart <time> [-seats N] [-price P]
  suggestions                      list all trip suggestions
  my-suggestions                   list suggestions you authored

driver:
  verify-driver -license <img> -car-license <img> -identity <img> -images <imgs>
                -model <m> -make <m> -color <c> -seats N -plate <p>
  verify-status                    show your driver verification status

admin:
  admin-passengers [-search <q>]   list passengers
  admin-drivers                    list drivers
  admin-driver -id <driverId>      show one driver's details and documents
  admin-verify -driver <id> | -document <id>

other:
  geocode -q <text>                resolve an address via Nominatim
  reverse -lat <f> -lng <f>        resolve a coordinate to an address
`

func main() {
	cfg := config.Load()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ctx := context.Background()
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}

// app wires the store, session and API client together once per invocation.
type app struct {
	cfg     config.Config
	local   *store.Local
	client  *api.Client
	session *session.Store
	geo     *geocode.Client
}

func newApp(cfg config.Config) (*app, error) {
	fileStore, err := store.NewFileStore(cfg.StateFile)
	if err != nil {
		return nil, err
	}
	local := store.NewLocal(fileStore)

	// The client reads the bearer token straight from the local store, which
	// the session keeps current on login and logout.
	client := api.New(cfg.APIBaseURL, cfg.AssetBaseURL, cfg.HTTPTimeout, local)
	return &app{
		cfg:     cfg,
		local:   local,
		client:  client,
		session: session.NewStore(local, client),
		geo:     geocode.New(cfg.NominatimBaseURL, cfg.AcceptLanguage, cfg.HTTPTimeout),
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami()
	case "trips":
		return a.trips(ctx, args)
	case "trip":
		return a.trip(ctx, args)
	case "create-trip":
		return a.createTrip(ctx, args)
	case "start":
		return a.transition(ctx, args, a.client.StartTrip, "trip started")
	case "complete":
		return a.transition(ctx, args, a.client.CompleteTrip, "trip completed")
	case "cancel":
		return a.transition(ctx, args, a.client.CancelTrip, "trip cancelled")
	case "seats":
		return a.seats(ctx, args)
	case "book":
		return a.book(ctx, args)
	case "bookings":
		return a.bookings(ctx, args)
	case "accept":
		return a.accept(ctx, args)
	case "reject":
		return a.reject(ctx, args)
	case "cancel-booking":
		return a.cancelBooking(ctx, args)
	case "rate":
		return a.rate(ctx, args)
	case "suggest":
		return a.suggest(ctx, args)
	case "suggestions":
		return a.suggestions(ctx, false)
	case "my-suggestions":
		return a.suggestions(ctx, true)
	case "verify-driver":
		return a.verifyDriver(ctx, args)
	case "verify-status":
		return a.verifyStatus(ctx)
	case "admin-passengers":
		return a.adminPassengers(ctx, args)
	case "admin-drivers":
		return a.adminDrivers(ctx, args)
	case "admin-driver":
		return a.adminDriver(ctx, args)
	case "admin-verify":
		return a.adminVerify(ctx, args)
	case "geocode":
		return a.geocodeCmd(ctx, args)
	case "reverse":
		return a.reverseCmd(ctx, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	if err := a.session.Login(ctx, *email, *password); err != nil {
		return err
	}
	user := a.session.CurrentUser()
	if user != nil {
		fmt.Printf("logged in as %s\n", user.Name)
	} else {
		fmt.Println("logged in")
	}
	return nil
}

func (a *app) whoami() error {
	if !a.session.IsLoggedIn() {
		fmt.Println("not logged in")
		return nil
	}
	user := a.session.CurrentUser()
	fmt.Printf("name:            %s\n", user.Name)
	fmt.Printf("email:           %s\n", user.Email)
	fmt.Printf("id:              %s\n", user.ID)
	fmt.Printf("verified driver: %t\n", a.session.IsVerifiedDriver())
	fmt.Printf("admin:           %t\n", a.session.IsAdmin())
	return nil
}

func (a *app) trips(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trips", flag.ContinueOnError)
	from := fs.String("from", "", "departure city")
	to := fs.String("to", "", "destination city")
	date := fs.String("date", "", "departure date (yyyy-mm-dd)")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := api.TripFilter{
		Page:            *page,
		PageSize:        *size,
		DepartureCity:   *from,
		DestinationCity: *to,
	}
	if *date != "" {
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		filter.DepartureDate = parsed
	}

	trips, err := a.client.SearchTrips(ctx, filter)
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Println("no trips found")
		return nil
	}
	for _, t := range trips {
		fmt.Printf("%s  %s -> %s  %s  seats=%d  %.2f EGP  driver=%s (%.1f)  [%s]\n",
			t.TripID, t.DepartureCity, t.DestinationCity,
			t.DepartureTime.Format("2006-01-02 15:04"),
			t.AvailableSeats, t.Price, t.DriverName, t.Rate, t.TripStatus)
	}
	return nil
}

func (a *app) trip(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trip", flag.ContinueOnError)
	id := fs.String("id", "", "trip id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("trip requires -id")
	}

	agg, err := a.client.RefreshTrip(ctx, *id)
	if err != nil {
		return err
	}
	trip := agg.Trip
	fmt.Printf("%s -> %s\n", trip.DepartureCity, trip.DestinationCity)
	fmt.Printf("departure: %s\n", trip.DepartureTime.Format("2006-01-02 15:04"))
	fmt.Printf("driver:    %s\n", trip.DriverName)
	fmt.Printf("seats:     %d\n", trip.SeatsAvailable)
	fmt.Printf("price:     %.2f EGP\n", trip.Price)
	fmt.Printf("status:    %s\n", trip.Status)
	if trip.Notes != "" {
		fmt.Printf("notes:     %s\n", trip.Notes)
	}

	userID := a.session.CurrentUserID()
	bookingID, _ := a.local.BookingID(trip.ID)
	actions := lifecycle.Evaluate(trip, userID, bookingID)
	if allowed := actionNames(actions); len(allowed) > 0 {
		fmt.Printf("you can:   %s\n", strings.Join(allowed, ", "))
	}

	if lifecycle.IsDriver(trip, userID) && len(agg.PendingBookings) > 0 {
		fmt.Println("pending bookings:")
		for _, b := range agg.PendingBookings {
			fmt.Printf("  %s  %s  seats=%d  %.2f EGP\n", b.ID, b.PassengerName, b.SeatsBooked, b.TotalPrice)
		}
	}
	return nil
}

func actionNames(a lifecycle.Actions) []string {
	var names []string
	if a.Start {
		names = append(names, "start")
	}
	if a.Complete {
		names = append(names, "complete")
	}
	if a.Cancel {
		names = append(names, "cancel")
	}
	if a.EditSeats {
		names = append(names, "seats")
	}
	if a.Book {
		names = append(names, "book")
	}
	if a.CancelBooking {
		names = append(names, "cancel-booking")
	}
	if a.Rate {
		names = append(names, "rate")
	}
	return names
}

func (a *app) transition(ctx context.Context, args []string, call func(context.Context, string) error, done string) error {
	fs := flag.NewFlagSet("transition", flag.ContinueOnError)
	id := fs.String("id", "", "trip id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("command requires -id")
	}
	if err := call(ctx, *id); err != nil {
		return err
	}
	fmt.Println(done)
	return nil
}

func (a *app) seats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seats", flag.ContinueOnError)
	id := fs.String("id", "", "trip id")
	n := fs.Int("n", 0, "available seats")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *n < 1 {
		return fmt.Errorf("seats requires -id and -n >= 1")
	}
	if err := a.client.UpdateTripSeats(ctx, *id, *n); err != nil {
		return err
	}
	fmt.Println("seats updated")
	return nil
}

func (a *app) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	tripID := fs.String("trip", "", "trip id")
	seats := fs.Int("seats", 1, "seats to book")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tripID == "" {
		return fmt.Errorf("book requires -trip")
	}

	trip, err := a.client.TripByID(ctx, *tripID)
	if err != nil {
		return err
	}
	userID := a.session.CurrentUserID()
	bookingID, _ := a.local.BookingID(trip.ID)
	if !lifecycle.Evaluate(trip, userID, bookingID).Book {
		return fmt.Errorf("this trip cannot be booked right now")
	}

	booking, err := a.client.CreateBooking(ctx, trip.ID, *seats, float64(*seats)*trip.Price)
	if err != nil {
		return err
	}
	if err := a.local.RememberBooking(trip.ID, booking.ID); err != nil {
		log.WithError(err).Warn("failed to record booking id")
	}
	fmt.Printf("booking %s created (%s)\n", booking.ID, booking.Status)
	return nil
}

func (a *app) bookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	tripID := fs.String("trip", "", "trip id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tripID == "" {
		return fmt.Errorf("bookings requires -trip")
	}
	bookings, err := a.client.PendingBookings(ctx, *tripID)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Println("no pending bookings")
		return nil
	}
	for _, b := range bookings {
		fmt.Printf("%s  %s  seats=%d  %.2f EGP\n", b.ID, b.PassengerName, b.SeatsBooked, b.TotalPrice)
	}
	return nil
}

func (a *app) accept(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("accept", flag.ContinueOnError)
	bookingID := fs.String("booking", "", "booking id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bookingID == "" {
		return fmt.Errorf("accept requires -booking")
	}
	if err := a.client.AcceptBooking(ctx, *bookingID); err != nil {
		return err
	}
	fmt.Println("booking accepted")
	return nil
}

func (a *app) reject(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reject", flag.ContinueOnError)
	bookingID := fs.String("booking", "", "booking id")
	tripID := fs.String("trip", "", "trip id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bookingID == "" || *tripID == "" {
		return fmt.Errorf("reject requires -booking and -trip")
	}
	if err := a.client.CancelBookingByDriver(ctx, *bookingID, *tripID); err != nil {
		return err
	}
	fmt.Println("booking rejected")
	return nil
}

func (a *app) cancelBooking(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel-booking", flag.ContinueOnError)
	tripID := fs.String("trip", "", "trip id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tripID == "" {
		return fmt.Errorf("cancel-booking requires -trip")
	}

	bookingID, ok := a.local.BookingID(*tripID)
	if !ok {
		return fmt.Errorf("no recorded booking for trip %s", *tripID)
	}
	if err := a.client.CancelBookingAsPassenger(ctx, bookingID, a.session.CurrentUserID()); err != nil {
		return err
	}
	if err := a.local.ForgetBooking(*tripID); err != nil {
		log.WithError(err).Warn("failed to forget booking id")
	}
	fmt.Println("booking cancelled")
	return nil
}

func (a *app) rate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rate", flag.ContinueOnError)
	tripID := fs.String("trip", "", "trip id")
	revieweeID := fs.String("to", "", "user id being rated")
	rate := fs.Float64("rate", 0, "rating 1-5")
	comment := fs.String("comment", "", "optional comment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tripID == "" || *revieweeID == "" || *rate < 1 || *rate > 5 {
		return fmt.Errorf("rate requires -trip, -to and -rate between 1 and 5")
	}

	userID := a.session.CurrentUserID()
	if a.local.HasRated(userID, *tripID) {
		return fmt.Errorf("you already rated this trip")
	}

	req := models.CreateReviewRequest{
		TripID:     *tripID,
		ReviewerID: userID,
		RevieweeID: *revieweeID,
		Rate:       *rate,
		Comment:    *comment,
	}
	if err := a.client.CreateReview(ctx, req); err != nil {
		return err
	}
	if err := a.local.MarkRated(userID, *tripID); err != nil {
		log.WithError(err).Warn("failed to record rating")
	}
	fmt.Println("review submitted")
	return nil
}

func (a *app) suggestions(ctx context.Context, mineOnly bool) error {
	var (
		list []models.TripSuggestion
		err  error
	)
	if mineOnly {
		user := a.session.CurrentUser()
		if user == nil {
			return fmt.Errorf("not logged in")
		}
		list, err = a.client.MySuggestions(ctx, user.Name)
	} else {
		list, err = a.client.AllSuggestions(ctx)
	}
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no suggestions")
		return nil
	}
	for _, s := range list {
		fmt.Printf("%s  %s -> %s  seats=%d  %.2f EGP  by %s\n",
			s.ID, s.Departure.City, s.Destination.City, s.SeatCount, s.SuggestedPrice, s.UserName)
	}
	return nil
}

func (a *app) verifyStatus(ctx context.Context) error {
	status, err := a.client.DriverVerifyStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("verified: %t\n", status.IsVerified)
	if status.Status != "" {
		fmt.Printf("status:   %s\n", status.Status)
	}
	return nil
}

func (a *app) geocodeCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("geocode", flag.ContinueOnError)
	query := fs.String("q", "", "free-text address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *query == "" {
		return fmt.Errorf("geocode requires -q")
	}
	result, err := a.geo.Search(ctx, *query)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println("no match")
		return nil
	}
	fmt.Printf("%s\n", result.DisplayName)
	fmt.Printf("city=%s country=%s lat=%g lng=%g\n", result.City, result.Country, result.Lat, result.Lng)
	return nil
}

func (a *app) reverseCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reverse", flag.ContinueOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Println(a.geo.Reverse(ctx, *lat, *lng))
	return nil
}
