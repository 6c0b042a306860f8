package referral

// Generated file contents for the referral module. These are emitted
// verbatim into the target project.

const initTemplate = `"""
Referral module.

Handles user referral system with configurable completion strategies.
"""

from .models import Referral, ReferralEvent, ReferralStatus, ReferralSettings
from .schemas import *
from .exceptions import *

__all__ = [
    "Referral",
    "ReferralEvent",
    "ReferralStatus",
    "ReferralSettings",
]
`

const modelsTemplate = `"""
Referral system models for tracking user referrals and milestones.
"""

from datetime import datetime, timezone
from uuid import uuid4
from typing import Optional
from enum import Enum

from sqlalchemy.orm import Mapped, mapped_column, relationship
from sqlalchemy import String, DateTime, Integer, Enum as SQLEnum, ForeignKey, Index, JSON
from sqlalchemy.dialects.postgresql import UUID

from app.core.database import Base


def utc_now():
    """Reusable function for UTC timestamp defaults."""
    return datetime.now(timezone.utc)


class ReferralStatus(str, Enum):
    """Status of the referral."""
    PENDING = "pending"      # Referred user signed up, no milestone reached yet
    COMPLETED = "completed"  # Success milestone reached
    CANCELLED = "cancelled"  # Optional: referral invalidated


class Referral(Base):
    """Core referral tracking. Records who referred whom and completion status."""
    __tablename__ = "referrals"
    __table_args__ = (
        Index("ix_referral_referrer_id", "referrer_id"),
        Index("ix_referral_referred_user_id", "referred_user_id"),
        Index("ix_referral_status", "status"),
    )

    id: Mapped[UUID] = mapped_column(UUID(as_uuid=True), primary_key=True, default=uuid4)
    referrer_id: Mapped[UUID] = mapped_column(ForeignKey("users.id"), nullable=False)
    referred_user_id: Mapped[UUID] = mapped_column(ForeignKey("users.id"), nullable=False, unique=True)
    referral_code: Mapped[str] = mapped_column(String(20), nullable=False)
    status: Mapped[ReferralStatus] = mapped_column(
        SQLEnum(ReferralStatus), default=ReferralStatus.PENDING, nullable=False
    )
    created_at: Mapped[datetime] = mapped_column(DateTime(timezone=True), default=utc_now)
    completed_at: Mapped[Optional[datetime]] = mapped_column(DateTime(timezone=True), nullable=True)

    events: Mapped[list["ReferralEvent"]] = relationship(back_populates="referral")


class ReferralEvent(Base):
    """Milestone events recorded against a referral."""
    __tablename__ = "referral_events"

    id: Mapped[UUID] = mapped_column(UUID(as_uuid=True), primary_key=True, default=uuid4)
    referral_id: Mapped[UUID] = mapped_column(ForeignKey("referrals.id"), nullable=False)
    event_type: Mapped[str] = mapped_column(String(50), nullable=False)
    payload: Mapped[dict] = mapped_column(JSON, default=dict)
    created_at: Mapped[datetime] = mapped_column(DateTime(timezone=True), default=utc_now)

    referral: Mapped["Referral"] = relationship(back_populates="events")


class ReferralSettings(Base):
    """Per-deployment referral programme settings."""
    __tablename__ = "referral_settings"

    id: Mapped[int] = mapped_column(Integer, primary_key=True)
    reward_amount: Mapped[int] = mapped_column(Integer, default=0)
    completion_event: Mapped[str] = mapped_column(String(50), default="first_booking")
    enabled: Mapped[bool] = mapped_column(default=True)
`

const configTemplate = `"""
Referral plugin configuration.
"""

from pydantic_settings import BaseSettings


class ReferralConfig(BaseSettings):
    """Settings for the referral programme, loaded from the environment."""

    REFERRAL_CODE_LENGTH: int = 8
    REFERRAL_REWARD_AMOUNT: int = 0
    REFERRAL_COMPLETION_EVENT: str = "first_booking"
    REFERRAL_ENABLED: bool = True

    class Config:
        env_prefix = "REFERRAL_"


referral_config = ReferralConfig()
`

const strategiesTemplate = `"""
Completion strategies for the referral programme.

A strategy decides when a referral counts as completed for a given user
type. Register one strategy per user type you want to support.
"""

from abc import ABC, abstractmethod
from uuid import UUID


class CompletionStrategy(ABC):
    """Decides whether an event completes a referral."""

    @abstractmethod
    async def is_completed(self, event_type: str, user_id: UUID, payload: dict) -> bool:
        ...


class FirstEventStrategy(CompletionStrategy):
    """Completes the referral on the first occurrence of the configured event."""

    def __init__(self, event_type: str):
        self.event_type = event_type

    async def is_completed(self, event_type: str, user_id: UUID, payload: dict) -> bool:
        return event_type == self.event_type


# Map user types to their completion strategy here.
STRATEGIES: dict[str, CompletionStrategy] = {
    "default": FirstEventStrategy("first_booking"),
}
`

const exceptionsTemplate = `"""
Referral module exceptions.
"""

from app.core.exceptions import AppException


class ReferralNotFoundError(AppException):
    status_code = 404
    detail = "Referral not found"


class SelfReferralError(AppException):
    status_code = 400
    detail = "Users cannot refer themselves"


class ReferralAlreadyCompletedError(AppException):
    status_code = 409
    detail = "Referral has already been completed"


class InvalidReferralCodeError(AppException):
    status_code = 400
    detail = "Invalid referral code"
`

const dependenciesTemplate = `"""
FastAPI dependencies for the referral module.
"""

from typing import Annotated

from fastapi import Depends
from sqlalchemy.ext.asyncio import AsyncSession

from app.core.database import get_session
from .services.referral_service import ReferralService


def get_referral_service() -> ReferralService:
    return ReferralService()


ReferralServiceDep = Annotated[ReferralService, Depends(get_referral_service)]
SessionDep = Annotated[AsyncSession, Depends(get_session)]
`

const tasksTemplate = `"""
Background tasks for the referral module.
"""

from uuid import UUID

from app.core.background.celery_app import celery_app
from app.core.background.internals.decorators import async_task


@async_task(celery_app, name="referral.process_event")
async def process_referral_event(event_type: str, user_id: str, payload: dict):
    """Process a referral milestone event off the request path."""
    from app.core.database import async_session_factory
    from .services.referral_service import ReferralService

    service = ReferralService()
    async with async_session_factory() as session:
        await service.process_event(session, event_type, UUID(user_id), payload)
        await session.commit()
`

const schemasInitTemplate = `"""
Referral schemas.
"""

from .referral_schemas import (
    ReferralCreate,
    ReferralRead,
    ReferralStats,
    ReferralEventCreate,
)

__all__ = [
    "ReferralCreate",
    "ReferralRead",
    "ReferralStats",
    "ReferralEventCreate",
]
`

const schemasTemplate = `"""
Pydantic schemas for the referral module.
"""

from datetime import datetime
from uuid import UUID
from typing import Optional

from pydantic import BaseModel, ConfigDict

from ..models import ReferralStatus


class ReferralCreate(BaseModel):
    referral_code: str
    referred_user_id: UUID


class ReferralRead(BaseModel):
    model_config = ConfigDict(from_attributes=True)

    id: UUID
    referrer_id: UUID
    referred_user_id: UUID
    referral_code: str
    status: ReferralStatus
    created_at: datetime
    completed_at: Optional[datetime]


class ReferralEventCreate(BaseModel):
    event_type: str
    payload: dict = {}


class ReferralStats(BaseModel):
    total: int
    pending: int
    completed: int
    cancelled: int
`

const crudInitTemplate = `"""
Referral CRUD layer.
"""

from .referral_crud import referral_crud

__all__ = ["referral_crud"]
`

const crudTemplate = `"""
Database access for the referral module.
"""

from uuid import UUID
from typing import Optional

from sqlalchemy import select, func
from sqlalchemy.ext.asyncio import AsyncSession

from ..models import Referral, ReferralStatus
from ..schemas import ReferralCreate, ReferralStats


class ReferralCRUD:
    """Query helpers over the referral tables."""

    async def get(self, session: AsyncSession, referral_id: UUID) -> Optional[Referral]:
        return await session.get(Referral, referral_id)

    async def get_by_referred_user(self, session: AsyncSession, user_id: UUID) -> Optional[Referral]:
        result = await session.execute(
            select(Referral).where(Referral.referred_user_id == user_id)
        )
        return result.scalar_one_or_none()

    async def create(self, session: AsyncSession, referrer_id: UUID, data: ReferralCreate) -> Referral:
        referral = Referral(
            referrer_id=referrer_id,
            referred_user_id=data.referred_user_id,
            referral_code=data.referral_code,
        )
        session.add(referral)
        await session.flush()
        return referral

    async def stats(self, session: AsyncSession, referrer_id: UUID) -> ReferralStats:
        result = await session.execute(
            select(Referral.status, func.count())
            .where(Referral.referrer_id == referrer_id)
            .group_by(Referral.status)
        )
        counts = {status: count for status, count in result.all()}
        return ReferralStats(
            total=sum(counts.values()),
            pending=counts.get(ReferralStatus.PENDING, 0),
            completed=counts.get(ReferralStatus.COMPLETED, 0),
            cancelled=counts.get(ReferralStatus.CANCELLED, 0),
        )


referral_crud = ReferralCRUD()
`

const servicesInitTemplate = `"""
Referral services.
"""

from .referral_service import ReferralService

__all__ = ["ReferralService"]
`

const serviceTemplate = `"""
Referral business logic.
"""

from datetime import datetime, timezone
from uuid import UUID

from sqlalchemy.ext.asyncio import AsyncSession

from ..crud import referral_crud
from ..models import ReferralEvent, ReferralStatus
from ..schemas import ReferralCreate, ReferralRead, ReferralStats
from ..strategies import STRATEGIES
from ..exceptions import SelfReferralError, ReferralAlreadyCompletedError


class ReferralService:
    """Creates referrals and advances them through milestone events."""

    async def create_referral(
        self, session: AsyncSession, referrer_id: UUID, data: ReferralCreate
    ) -> ReferralRead:
        if referrer_id == data.referred_user_id:
            raise SelfReferralError()
        referral = await referral_crud.create(session, referrer_id, data)
        return ReferralRead.model_validate(referral)

    async def process_event(
        self, session: AsyncSession, event_type: str, user_id: UUID, payload: dict
    ) -> None:
        referral = await referral_crud.get_by_referred_user(session, user_id)
        if referral is None:
            return
        if referral.status == ReferralStatus.COMPLETED:
            raise ReferralAlreadyCompletedError()

        session.add(ReferralEvent(referral_id=referral.id, event_type=event_type, payload=payload))

        strategy = STRATEGIES.get("default")
        if strategy and await strategy.is_completed(event_type, user_id, payload):
            referral.status = ReferralStatus.COMPLETED
            referral.completed_at = datetime.now(timezone.utc)

    async def stats(self, session: AsyncSession, referrer_id: UUID) -> ReferralStats:
        return await referral_crud.stats(session, referrer_id)
`

const routesInitTemplate = `"""
Referral routes.
"""

from .referral_routes import router as referral_router
from .referral_admin_routes import router as referral_admin_router

__all__ = ["referral_router", "referral_admin_router"]
`

const routesTemplate = `"""
Public referral endpoints.
"""

from fastapi import APIRouter

from app.user.dependencies import CurrentUserDep
from ..dependencies import ReferralServiceDep, SessionDep
from ..schemas import ReferralCreate, ReferralRead, ReferralStats

router = APIRouter(prefix="/referrals", tags=["referrals"])


@router.post("", response_model=ReferralRead, status_code=201)
async def create_referral(
    data: ReferralCreate,
    user: CurrentUserDep,
    service: ReferralServiceDep,
    session: SessionDep,
):
    referral = await service.create_referral(session, user.id, data)
    await session.commit()
    return referral


@router.get("/stats", response_model=ReferralStats)
async def my_referral_stats(
    user: CurrentUserDep,
    service: ReferralServiceDep,
    session: SessionDep,
):
    return await service.stats(session, user.id)
`

const adminRoutesTemplate = `"""
Admin referral endpoints.
"""

from uuid import UUID

from fastapi import APIRouter

from app.user.dependencies import AdminUserDep
from ..dependencies import ReferralServiceDep, SessionDep
from ..schemas import ReferralRead, ReferralStats

router = APIRouter(prefix="/admin/referrals", tags=["referrals-admin"])


@router.get("/{referrer_id}/stats", response_model=ReferralStats)
async def referral_stats_for_user(
    referrer_id: UUID,
    admin: AdminUserDep,
    service: ReferralServiceDep,
    session: SessionDep,
):
    return await service.stats(session, referrer_id)
`
