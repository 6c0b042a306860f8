// Package referral is the built-in user referral plugin: referral
// tracking models, configurable completion strategies, milestone
// events, and admin routes. It requires the project's user module.
package referral

import (
	"path/filepath"

	"fcube.dev/cli/internal/core/plugin"
)

const postInstallNotes = `1. Add referral_code field to User model:
   referral_code: Mapped[Optional[str]] = mapped_column(String(20), unique=True, nullable=True)

2. Create UserReferralIntegration service in app/user/services/

3. Update alembic_models_import.py:
   from app.referral.models import Referral, ReferralEvent, ReferralSettings

4. Create a strategy for your user types in app/referral/strategies.py

5. Trigger referral events from your modules:
   await referral_service.process_event(session, "booking_completed", user_id, {"booking_id": ...})`

// Metadata describes the referral plugin for the registry.
func Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "referral",
		Description: "User referral system with configurable completion strategies and milestone tracking",
		Version:     "1.0.0",
		Dependencies: []string{
			"user",
		},
		FilesGenerated: []string{
			"app/referral/__init__.py",
			"app/referral/models.py",
			"app/referral/config.py",
			"app/referral/strategies.py",
			"app/referral/exceptions.py",
			"app/referral/dependencies.py",
			"app/referral/tasks.py",
			"app/referral/schemas/__init__.py",
			"app/referral/schemas/referral_schemas.py",
			"app/referral/crud/__init__.py",
			"app/referral/crud/referral_crud.py",
			"app/referral/services/__init__.py",
			"app/referral/services/referral_service.py",
			"app/referral/routes/__init__.py",
			"app/referral/routes/referral_routes.py",
			"app/referral/routes/referral_admin_routes.py",
		},
		ConfigRequired:   true,
		PostInstallNotes: postInstallNotes,
		Generator:        Generate,
	}
}

// Generate returns the referral module files in installation order.
// Paths are relative to targetDir; no filesystem access happens here.
func Generate(targetDir string) []plugin.GeneratedFile {
	dir := "referral"
	return []plugin.GeneratedFile{
		{Path: filepath.Join(dir, "__init__.py"), Content: initTemplate},
		{Path: filepath.Join(dir, "models.py"), Content: modelsTemplate},
		{Path: filepath.Join(dir, "config.py"), Content: configTemplate},
		{Path: filepath.Join(dir, "strategies.py"), Content: strategiesTemplate},
		{Path: filepath.Join(dir, "exceptions.py"), Content: exceptionsTemplate},
		{Path: filepath.Join(dir, "dependencies.py"), Content: dependenciesTemplate},
		{Path: filepath.Join(dir, "tasks.py"), Content: tasksTemplate},
		{Path: filepath.Join(dir, "schemas", "__init__.py"), Content: schemasInitTemplate},
		{Path: filepath.Join(dir, "schemas", "referral_schemas.py"), Content: schemasTemplate},
		{Path: filepath.Join(dir, "crud", "__init__.py"), Content: crudInitTemplate},
		{Path: filepath.Join(dir, "crud", "referral_crud.py"), Content: crudTemplate},
		{Path: filepath.Join(dir, "services", "__init__.py"), Content: servicesInitTemplate},
		{Path: filepath.Join(dir, "services", "referral_service.py"), Content: serviceTemplate},
		{Path: filepath.Join(dir, "routes", "__init__.py"), Content: routesInitTemplate},
		{Path: filepath.Join(dir, "routes", "referral_routes.py"), Content: routesTemplate},
		{Path: filepath.Join(dir, "routes", "referral_admin_routes.py"), Content: adminRoutesTemplate},
	}
}
