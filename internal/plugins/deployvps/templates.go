package deployvps

const gitignoreTemplate = `# Rendered output and live configuration are never committed.
config.env
generated/
*.pem
*.key
`

const configEnvTemplate = `# deploy-vps configuration - single source of truth.
# Copy to config.env and fill in your values. Every template under
# templates/ is rendered from these variables.

PROJECT_NAME=my_web_site
DOMAIN=example.com
API_SUBDOMAIN=api

# Docker images
API_IMAGE=my_web_site-api:latest
WORKER_IMAGE=my_web_site-worker:latest

# Database
POSTGRES_HOST=db
POSTGRES_PORT=5432
POSTGRES_DB=my_web_site
POSTGRES_USER=app
POSTGRES_PASSWORD=change-me

# Redis
REDIS_HOST=redis
REDIS_PORT=6379
REDIS_PASSWORD=change-me

# SSL
SSL_EMAIL=ops@example.com

# Workers
CELERY_WORKER_CONCURRENCY=4
`

const readmeTemplate = `# VPS Deployment

Template-driven deployment for this project. All configuration lives in
config.env; scripts render the templates under templates/ into
generated/ and apply them with Docker Compose.

## Layout

- config.env.example - every variable the templates use
- templates/docker/  - compose files for production and staging
- templates/nginx/   - reverse proxy and API vhost
- templates/redis/   - redis configuration
- scripts/           - setup, validate, deploy, ssl

## Workflow

1. cp config.env.example config.env && edit
2. ./scripts/validate.sh
3. ./scripts/setup.sh      (first time only)
4. ./scripts/deploy.sh production
`

const productionComposeTemplate = `version: "3.8"

services:
  api:
    image: ${API_IMAGE}
    restart: unless-stopped
    env_file: ../config.env
    depends_on:
      - db
      - redis
    networks:
      - backend

  worker:
    image: ${WORKER_IMAGE}
    restart: unless-stopped
    command: celery -A app.core.background.celery_app worker --concurrency=${CELERY_WORKER_CONCURRENCY}
    env_file: ../config.env
    depends_on:
      - redis
    networks:
      - backend

  db:
    image: postgres:16
    restart: unless-stopped
    environment:
      POSTGRES_DB: ${POSTGRES_DB}
      POSTGRES_USER: ${POSTGRES_USER}
      POSTGRES_PASSWORD: ${POSTGRES_PASSWORD}
    volumes:
      - pgdata:/var/lib/postgresql/data
    networks:
      - backend

  redis:
    image: redis:7
    restart: unless-stopped
    command: redis-server /usr/local/etc/redis/redis.conf
    volumes:
      - ../generated/redis.conf:/usr/local/etc/redis/redis.conf:ro
    networks:
      - backend

  nginx:
    image: nginx:stable
    restart: unless-stopped
    ports:
      - "80:80"
      - "443:443"
    volumes:
      - ../generated/nginx.conf:/etc/nginx/nginx.conf:ro
      - ../generated/api.conf:/etc/nginx/conf.d/api.conf:ro
      - certs:/etc/letsencrypt
    depends_on:
      - api
    networks:
      - backend

volumes:
  pgdata:
  certs:

networks:
  backend:
`

const stagingComposeTemplate = `version: "3.8"

# Staging mirrors production minus TLS termination; it sits behind the
# production nginx on a separate subdomain.

services:
  api:
    image: ${API_IMAGE}
    restart: unless-stopped
    env_file: ../config.env
    environment:
      ENVIRONMENT: staging
    depends_on:
      - redis
    networks:
      - backend

  worker:
    image: ${WORKER_IMAGE}
    restart: unless-stopped
    command: celery -A app.core.background.celery_app worker --concurrency=2
    env_file: ../config.env
    networks:
      - backend

  redis:
    image: redis:7
    restart: unless-stopped
    networks:
      - backend

networks:
  backend:
`

const nginxConfTemplate = `user nginx;
worker_processes auto;

events {
    worker_connections 1024;
}

http {
    include /etc/nginx/mime.types;
    sendfile on;
    server_tokens off;

    gzip on;
    gzip_types application/json text/css application/javascript;

    include /etc/nginx/conf.d/*.conf;
}
`

const apiConfTemplate = `server {
    listen 80;
    server_name ${API_SUBDOMAIN}.${DOMAIN};
    return 301 https://$host$request_uri;
}

server {
    listen 443 ssl;
    server_name ${API_SUBDOMAIN}.${DOMAIN};

    ssl_certificate /etc/letsencrypt/live/${DOMAIN}/fullchain.pem;
    ssl_certificate_key /etc/letsencrypt/live/${DOMAIN}/privkey.pem;

    location / {
        proxy_pass http://api:8000;
        proxy_set_header Host $host;
        proxy_set_header X-Real-IP $remote_addr;
        proxy_set_header X-Forwarded-Proto $scheme;
    }
}
`

const redisConfTemplate = `bind 0.0.0.0
port ${REDIS_PORT}
requirepass ${REDIS_PASSWORD}
maxmemory 256mb
maxmemory-policy allkeys-lru
appendonly yes
`

const commonShTemplate = `#!/usr/bin/env bash
# Shared helpers for the deploy scripts.

set -euo pipefail

SCRIPT_DIR="$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)"
DEPLOY_ROOT="$(cd "${SCRIPT_DIR}/../.." && pwd)"
CONFIG_FILE="${DEPLOY_ROOT}/config.env"
GENERATED_DIR="${DEPLOY_ROOT}/generated"

log()  { printf '[deploy] %s\n' "$*"; }
fail() { printf '[deploy] ERROR: %s\n' "$*" >&2; exit 1; }

load_config() {
    [ -f "${CONFIG_FILE}" ] || fail "config.env not found; copy config.env.example first"
    set -a
    # shellcheck disable=SC1090
    . "${CONFIG_FILE}"
    set +a
}
`

const templateEngineShTemplate = `#!/usr/bin/env bash
# Renders *.template files by substituting ${VAR} references from the
# environment. Unset variables abort the render rather than producing
# half-filled output.

set -euo pipefail

render_template() {
    local src="$1" dst="$2"
    local missing
    missing=$(grep -oE '\$\{[A-Z_][A-Z0-9_]*\}' "${src}" | tr -d '${}' | sort -u | while read -r var; do
        [ -n "${!var:-}" ] || echo "${var}"
    done)
    [ -z "${missing}" ] || fail "unset variables in ${src}: ${missing}"

    mkdir -p "$(dirname "${dst}")"
    envsubst < "${src}" > "${dst}"
    log "rendered ${dst}"
}

render_all() {
    local templates_dir="$1" out_dir="$2"
    find "${templates_dir}" -name '*.template' | while read -r tpl; do
        local name
        name="$(basename "${tpl}" .template)"
        render_template "${tpl}" "${out_dir}/${name}"
    done
}
`

const setupShTemplate = `#!/usr/bin/env bash
# One-time server preparation: packages, docker, firewall.

set -euo pipefail
. "$(dirname "$0")/common/common.sh"

load_config

log "installing base packages"
sudo apt-get update -qq
sudo apt-get install -y -qq docker.io docker-compose-plugin gettext-base ufw

log "configuring firewall"
sudo ufw allow OpenSSH
sudo ufw allow 80/tcp
sudo ufw allow 443/tcp
sudo ufw --force enable

log "setup complete; run scripts/deploy.sh production"
`

const validateShTemplate = `#!/usr/bin/env bash
# Validates config.env against the variables the templates reference.

set -euo pipefail
. "$(dirname "$0")/common/common.sh"
. "$(dirname "$0")/common/template-engine.sh"

load_config

errors=0
for tpl in $(find "${DEPLOY_ROOT}/templates" -name '*.template'); do
    for var in $(grep -oE '\$\{[A-Z_][A-Z0-9_]*\}' "${tpl}" | tr -d '${}' | sort -u); do
        if [ -z "${!var:-}" ]; then
            log "missing: ${var} (needed by $(basename "${tpl}"))"
            errors=$((errors + 1))
        fi
    done
done

[ "${errors}" -eq 0 ] || fail "${errors} missing variable(s) in config.env"
log "configuration OK"
`

const deployShTemplate = `#!/usr/bin/env bash
# Renders templates for the given environment and brings the stack up.
# Usage: deploy.sh production|staging

set -euo pipefail
. "$(dirname "$0")/common/common.sh"
. "$(dirname "$0")/common/template-engine.sh"

ENVIRONMENT="${1:-production}"
case "${ENVIRONMENT}" in
    production|staging) ;;
    *) fail "unknown environment: ${ENVIRONMENT}" ;;
esac

load_config

log "rendering templates for ${ENVIRONMENT}"
render_all "${DEPLOY_ROOT}/templates/nginx" "${GENERATED_DIR}"
render_all "${DEPLOY_ROOT}/templates/redis" "${GENERATED_DIR}"
render_template "${DEPLOY_ROOT}/templates/docker/${ENVIRONMENT}.compose.yml.template" \
    "${GENERATED_DIR}/${ENVIRONMENT}.compose.yml"

log "starting stack"
docker compose -f "${GENERATED_DIR}/${ENVIRONMENT}.compose.yml" up -d --remove-orphans

log "deployed ${PROJECT_NAME} (${ENVIRONMENT})"
`

const sslShTemplate = `#!/usr/bin/env bash
# Obtains or renews Let's Encrypt certificates for the configured domain.

set -euo pipefail
. "$(dirname "$0")/common/common.sh"

load_config

log "requesting certificate for ${API_SUBDOMAIN}.${DOMAIN}"
docker run --rm \
    -v certs:/etc/letsencrypt \
    -p 80:80 \
    certbot/certbot certonly --standalone \
    -d "${API_SUBDOMAIN}.${DOMAIN}" \
    --email "${SSL_EMAIL}" --agree-tos --non-interactive

log "certificate ready; restart nginx to pick it up"
`
