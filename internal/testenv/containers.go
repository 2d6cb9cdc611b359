// Helpers for running tests against real databases with testcontainers.
// Used by the integration and e2e tests and by the cmd/testcontainers executable.
// Expects environment variables to be loaded from .env files.

package testenv

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/localnerve/gamesdb/internal/config"
	"github.com/localnerve/gamesdb/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// ServiceImage is the tag the service image is built and reused under
const ServiceImage = "gamesdb-test:latest"

type TestContainers struct {
	Network                 *testcontainers.DockerNetwork
	DBContainer             testcontainers.Container
	GamesDBContainer        testcontainers.Container
	GamesDBBuilderContainer testcontainers.Container

	// DBConfig reaches the database container from the host
	DBConfig *config.Config
	// BaseURL reaches the service container from the host, when started
	BaseURL string
}

func (tc *TestContainers) Terminate(t testing.TB) {
	ctx := context.Background()
	if tc.GamesDBContainer != nil {
		if err := tc.GamesDBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate GamesDB: %v", err)
		}
	}
	if tc.GamesDBBuilderContainer != nil {
		if err := tc.GamesDBBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate GamesDB Builder: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// SkipWithoutContainers skips t in -short mode or when no database image is configured
func SkipWithoutContainers(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	if os.Getenv("DB_IMAGE") == "" {
		t.Skip("DB_IMAGE is not set")
	}
}

// OpenContainerDB starts the configured database container, connects to it from the host
// and migrates the schema. Everything is torn down when the test ends.
func OpenContainerDB(t testing.TB) *gorm.DB {
	t.Helper()

	tc, err := StartDatabase(t, nil)
	if err != nil {
		t.Fatalf("Failed to start database container: %v", err)
	}
	t.Cleanup(func() { tc.Terminate(t) })

	db, err := connectWithRetry(tc.DBConfig, 30)
	if err != nil {
		t.Fatalf("Failed to connect to database container: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate database container: %v", err)
	}
	return db
}

// StartDatabase creates and starts the database container from DB_IMAGE / DB_TYPE.
// When nw is given the container joins it under the DB_HOST alias.
func StartDatabase(t testing.TB, nw *testcontainers.DockerNetwork) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{Network: nw}

	dbType := getEnv("DB_TYPE", "mariadb")
	tcpDbPort, err := nat.NewPort("tcp", getEnv("DB_PORT", defaultDBPort(dbType)))
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	req := testcontainers.ContainerRequest{
		Image:        os.Getenv("DB_IMAGE"),
		ExposedPorts: []string{string(tcpDbPort)},
		Env:          getDBInitEnvMap(dbType),
		WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
	}
	if nw != nil {
		req.Networks = []string{nw.Name}
		req.NetworkAliases = map[string][]string{
			nw.Name: {getEnv("DB_HOST", "db")},
		}
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start database: %w", err)
	}
	testContainers.DBContainer = dbContainer

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		testContainers.Terminate(t)
		return nil, err
	}
	dbPort, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		testContainers.Terminate(t)
		return nil, err
	}

	testContainers.DBConfig = &config.Config{
		DBType:            dbType,
		DBHost:            dbHost,
		DBPort:            dbPort.Port(),
		DBDatabase:        getEnv("DB_DATABASE", "games"),
		DBUser:            getEnv("DB_USER", "games"),
		DBPassword:        getEnv("DB_PASSWORD", "games"),
		DBSSLMode:         "disable",
		DBConnectionLimit: 5,
		DBLogLevel:        "silent",
	}
	logMessage(t, "DB=%s:%s", dbHost, dbPort.Port())

	return testContainers, nil
}

// CreateAllTestContainers starts the database and the service on a private network
func CreateAllTestContainers(t testing.TB) (*TestContainers, error) {
	ctx := context.Background()

	debugContainer := os.Getenv("DEBUG_CONTAINER")

	// Create a network
	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}

	testContainers, err := StartDatabase(t, nw)
	if err != nil {
		_ = nw.Remove(ctx)
		return nil, err
	}

	// the database must accept logins before the service migrates
	db, err := connectWithRetry(testContainers.DBConfig, 30)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	_ = database.Close(db)

	imageExists, err := imageExists(ctx, ServiceImage)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to check if image exists: %w", err)
	}

	servicePortNumber := getEnv("PORT", "3000")
	tcpServicePort, err := nat.NewPort("tcp", servicePortNumber)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to create GamesDB port: %w", err)
	}

	serviceExposedPorts := []string{string(tcpServicePort)}
	if debugContainer == "true" {
		serviceExposedPorts = append(serviceExposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"}, // Force local 2345
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy
	waitStrategy = wait.ForHTTP("/healthz").WithPort(tcpServicePort).WithStartupTimeout(30 * time.Second)
	if debugContainer == "true" {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	dbCfg := testContainers.DBConfig
	serviceContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: serviceExposedPorts,
		Env: map[string]string{
			"DB_TYPE":             dbCfg.DBType,
			"DB_HOST":             getEnv("DB_HOST", "db"),
			"DB_PORT":             getEnv("DB_PORT", defaultDBPort(dbCfg.DBType)),
			"DB_DATABASE":         dbCfg.DBDatabase,
			"DB_USER":             dbCfg.DBUser,
			"DB_PASSWORD":         dbCfg.DBPassword,
			"DB_CONNECTION_LIMIT": getEnv("DB_CONNECTION_LIMIT", "5"),
			"DB_AUTO_MIGRATE":     "true",
			"LOG_FORMAT":          "json",
			"PORT":                servicePortNumber,
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{nw.Name},
	}

	if debugContainer == "true" {
		serviceContainerRequest.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./gamesdb",
		}
	}

	if !imageExists {
		// Build the builder stage first, then the runtime image we keep
		resourceReaperSessionID := uuid.New().String()

		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &resourceReaperSessionID,
		}
		if debugContainer == "true" {
			buildArgs["DEBUG"] = &debugContainer
		}

		buildContext := getEnv("TESTCONTAINERS_BUILD_CONTEXT", "../..")

		logMessage(t, "Image %s does not exist, building...", ServiceImage)
		builderContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "gamesdb-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder" // Build specific stage
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			testContainers.Terminate(t)
			return nil, fmt.Errorf("failed to build gamesdb-test-builder: %w", err)
		}
		testContainers.GamesDBBuilderContainer = builderContainer

		imageNameParts := strings.Split(ServiceImage, ":")
		serviceContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true, // Keep the image so we can reuse it
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", ServiceImage)
		serviceContainerRequest.Image = ServiceImage
	}

	serviceContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: serviceContainerRequest,
		Started:          true,
	})
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to start GamesDB: %w", err)
	}
	testContainers.GamesDBContainer = serviceContainer

	// Log the localhost and mapped ports for GamesDB
	serviceHost, _ := serviceContainer.Host(ctx)
	servicePort, _ := serviceContainer.MappedPort(ctx, tcpServicePort)
	testContainers.BaseURL = fmt.Sprintf("http://%s:%s", serviceHost, servicePort.Port())
	logMessage(t, "BASE_URL=%s", testContainers.BaseURL)

	logMessage(t, "GamesDB testcontainer started successfully")
	return testContainers, nil
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "postgres", "postgresql":
		return map[string]string{
			"POSTGRES_PASSWORD": getEnv("DB_PASSWORD", "games"),
			"POSTGRES_USER":     getEnv("DB_USER", "games"),
			"POSTGRES_DB":       getEnv("DB_DATABASE", "games"),
		}
	case "sqlserver", "mssql":
		return map[string]string{
			"ACCEPT_EULA":       "Y",
			"MSSQL_SA_PASSWORD": getEnv("DB_PASSWORD", "games"),
		}
	default:
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": getEnv("DB_ROOT_PASSWORD", "root"),
			"MYSQL_DATABASE":      getEnv("DB_DATABASE", "games"),
			"MYSQL_USER":          getEnv("DB_USER", "games"),
			"MYSQL_PASSWORD":      getEnv("DB_PASSWORD", "games"),
		}
	}
}

func defaultDBPort(dbType string) string {
	switch dbType {
	case "postgres", "postgresql":
		return "5432"
	case "sqlserver", "mssql":
		return "1433"
	}
	return "3306"
}

// connectWithRetry waits for the database to accept logins, one attempt per second
func connectWithRetry(cfg *config.Config, attempts int) (*gorm.DB, error) {
	var err error
	for i := 0; i < attempts; i++ {
		var db *gorm.DB
		if db, err = database.Connect(cfg); err == nil {
			sqlDB, _ := db.DB()
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			_ = database.Close(db)
		}
		time.Sleep(1 * time.Second)
	}
	return nil, err
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, image := range images {
		for _, tag := range image.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func logMessage(t testing.TB, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
