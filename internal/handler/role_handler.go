package handler

import (
	"strconv"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleRepo repository.RoleRepository
}

func NewRoleHandler(roleRepo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo}
}

// RoleRequest covers role creation and edits.
type RoleRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetRoles lists all roles
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	return c.JSON(roles)
}

// CreateRole adds a role
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Code == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Code and name are required"})
	}

	if existing, _ := h.roleRepo.FindByCode(req.Code); existing != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Role code already exists"})
	}

	role := &model.Role{Code: req.Code, Name: req.Name, Description: req.Description}
	if err := h.roleRepo.Create(role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create role"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Role created", "data": role})
}

// UpdateRole edits a role's name and description. The code stays fixed
// once created, since the policy table keys on it.
// PUT /api/v1/roles/:id
func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	role, err := h.roleRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Role not found"})
	}

	if req.Name != "" {
		role.Name = req.Name
	}
	role.Description = req.Description

	if err := h.roleRepo.Update(role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update role"})
	}
	return c.JSON(fiber.Map{"message": "Role updated", "data": role})
}

// DeleteRole removes an unreferenced role
// DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	if _, err := h.roleRepo.FindByID(uint(id)); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Role not found"})
	}

	count, err := h.roleRepo.CountUsers(uint(id))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check role usage"})
	}
	if count > 0 {
		return c.Status(409).JSON(fiber.Map{"error": "Role is assigned to users and cannot be deleted"})
	}

	if err := h.roleRepo.Delete(uint(id)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete role"})
	}
	return c.JSON(fiber.Map{"message": "Role deleted"})
}
