// Package deployvps is the built-in VPS deployment plugin. It emits a
// self-contained deploy-vps/ tree: Docker Compose templates, Nginx
// reverse-proxy and Redis configuration, and the shell scripts that
// render and apply them on a server. Everything is driven by a single
// config.env file; the generated tree has no project-specific values
// baked in.
package deployvps

import (
	"path/filepath"

	"fcube.dev/cli/internal/core/plugin"
)

const postInstallNotes = `1. Navigate to the deploy-vps directory:
   cd deploy-vps

2. Copy and configure the environment file:
   cp config.env.example config.env

3. Make scripts executable (on Linux/macOS):
   chmod +x scripts/*.sh scripts/common/*.sh

4. Validate your configuration:
   ./scripts/validate.sh

5. Run the initial server setup, then deploy:
   ./scripts/setup.sh
   ./scripts/deploy.sh production`

// Metadata describes the deploy_vps plugin for the registry.
func Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:         "deploy_vps",
		Description:  "Complete VPS deployment system with Docker, Nginx, SSL, Redis, and Celery workers",
		Version:      "1.0.0",
		Dependencies: nil, // usable with any generated project
		FilesGenerated: []string{
			"deploy-vps/.gitignore",
			"deploy-vps/config.env.example",
			"deploy-vps/README.md",
			"deploy-vps/templates/docker/production.compose.yml.template",
			"deploy-vps/templates/docker/staging.compose.yml.template",
			"deploy-vps/templates/nginx/nginx.conf.template",
			"deploy-vps/templates/nginx/api.conf.template",
			"deploy-vps/templates/redis/redis.conf.template",
			"deploy-vps/scripts/common/common.sh",
			"deploy-vps/scripts/common/template-engine.sh",
			"deploy-vps/scripts/setup.sh",
			"deploy-vps/scripts/validate.sh",
			"deploy-vps/scripts/deploy.sh",
			"deploy-vps/scripts/ssl.sh",
		},
		ConfigRequired:   true,
		PostInstallNotes: postInstallNotes,
		Generator:        Generate,
	}
}

// Generate returns the deployment tree in installation order. The tree
// is rooted at deploy-vps/ next to the app directory, so paths climb
// out of targetDir's module layout deliberately.
func Generate(targetDir string) []plugin.GeneratedFile {
	dir := filepath.Join("..", "deploy-vps")
	return []plugin.GeneratedFile{
		{Path: filepath.Join(dir, ".gitignore"), Content: gitignoreTemplate},
		{Path: filepath.Join(dir, "config.env.example"), Content: configEnvTemplate},
		{Path: filepath.Join(dir, "README.md"), Content: readmeTemplate},
		{Path: filepath.Join(dir, "templates", "docker", "production.compose.yml.template"), Content: productionComposeTemplate},
		{Path: filepath.Join(dir, "templates", "docker", "staging.compose.yml.template"), Content: stagingComposeTemplate},
		{Path: filepath.Join(dir, "templates", "nginx", "nginx.conf.template"), Content: nginxConfTemplate},
		{Path: filepath.Join(dir, "templates", "nginx", "api.conf.template"), Content: apiConfTemplate},
		{Path: filepath.Join(dir, "templates", "redis", "redis.conf.template"), Content: redisConfTemplate},
		{Path: filepath.Join(dir, "scripts", "common", "common.sh"), Content: commonShTemplate},
		{Path: filepath.Join(dir, "scripts", "common", "template-engine.sh"), Content: templateEngineShTemplate},
		{Path: filepath.Join(dir, "scripts", "setup.sh"), Content: setupShTemplate},
		{Path: filepath.Join(dir, "scripts", "validate.sh"), Content: validateShTemplate},
		{Path: filepath.Join(dir, "scripts", "deploy.sh"), Content: deployShTemplate},
		{Path: filepath.Join(dir, "scripts", "ssl.sh"), Content: sslShTemplate},
	}
}
