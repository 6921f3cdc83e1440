package commands

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"daybook/internal/application"
	"daybook/internal/domain"
)

// DefaultCategoryColor is used when a category is added without a color
const DefaultCategoryColor = "#e9d5ff"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryView is a category as shown in a list
type CategoryView struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
	Default     bool   `json:"default"`
	InUse       int    `json:"inUse"`
}

// AddCategoryCommand creates a custom category for one entity kind
type AddCategoryCommand struct {
	session *application.Session
	Kind    domain.CategoryKind
	Name    string
	Color   string
}

// NewAddCategoryCommand creates a new AddCategoryCommand
func NewAddCategoryCommand(session *application.Session, kind domain.CategoryKind, name, color string) *AddCategoryCommand {
	return &AddCategoryCommand{session: session, Kind: kind, Name: name, Color: color}
}

// Validate checks the fields that do not depend on existing categories
func (c *AddCategoryCommand) Validate() error {
	if !c.Kind.IsValid() {
		return &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown category kind: %s", c.Kind)}
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if c.Color != "" && !hexColor.MatchString(c.Color) {
		return &application.ValidationError{Field: "color", Message: fmt.Sprintf("expected #rrggbb, got: %s", c.Color)}
	}
	return nil
}

// Execute runs the add category command
func (c *AddCategoryCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	category := domain.Category{Name: strings.TrimSpace(c.Name), Color: c.Color}
	if category.Color == "" {
		category.Color = DefaultCategoryColor
	}

	changed, err := c.session.Mutate(ctx, "add category", func(data *domain.Aggregate) (bool, error) {
		list := data.Categories(c.Kind)
		if domain.CategoryExists(c.Kind, *list, category.Name) {
			return false, application.FromDomain("name", fmt.Errorf("%w: %s", domain.ErrDuplicateCategory, category.Name))
		}
		// Custom lists are stored newest first
		*list = append([]domain.Category{category}, *list...)
		return true, nil
	})
	if !changed {
		return nil, err
	}
	return &Result{ID: category.Name, Changed: true, Message: fmt.Sprintf("Added %s category: %s", c.Kind, category.Name)}, err
}

// DeleteCategoryCommand removes a custom category. Entities keep the label.
type DeleteCategoryCommand struct {
	session *application.Session
	Kind    domain.CategoryKind
	Name    string
}

// NewDeleteCategoryCommand creates a new DeleteCategoryCommand
func NewDeleteCategoryCommand(session *application.Session, kind domain.CategoryKind, name string) *DeleteCategoryCommand {
	return &DeleteCategoryCommand{session: session, Kind: kind, Name: name}
}

// Validate checks if the delete is valid
func (c *DeleteCategoryCommand) Validate() error {
	if !c.Kind.IsValid() {
		return &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown category kind: %s", c.Kind)}
	}
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the delete category command
func (c *DeleteCategoryCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var inUse int
	name := strings.TrimSpace(c.Name)
	changed, err := c.session.Mutate(ctx, "delete category", func(data *domain.Aggregate) (bool, error) {
		list := data.Categories(c.Kind)
		before := len(*list)
		kept := (*list)[:0]
		for _, cat := range *list {
			if strings.EqualFold(cat.Name, name) {
				name = cat.Name
				continue
			}
			kept = append(kept, cat)
		}
		*list = kept
		inUse = data.CountCategoryUsage(c.Kind, name)
		return len(kept) != before, nil
	})
	if !changed {
		return unchanged(string(c.Kind)+" category", c.Name), err
	}

	msg := fmt.Sprintf("Deleted %s category: %s", c.Kind, name)
	if inUse > 0 {
		msg += fmt.Sprintf(" (%d item(s) keep the label)", inUse)
	}
	return &Result{ID: c.Name, Changed: true, Message: msg}, err
}

// ListCategoriesCommand lists custom categories followed by the defaults
type ListCategoriesCommand struct {
	session *application.Session
	Kind    domain.CategoryKind
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(session *application.Session, kind domain.CategoryKind) *ListCategoriesCommand {
	return &ListCategoriesCommand{session: session, Kind: kind}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]CategoryView, error) {
	if !c.Kind.IsValid() {
		return nil, &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown category kind: %s", c.Kind)}
	}

	var views []CategoryView
	c.session.View(func(data *domain.Aggregate) {
		for _, cat := range *data.Categories(c.Kind) {
			views = append(views, CategoryView{
				Name:        cat.Name,
				DisplayName: cat.Name,
				Color:       cat.Color,
				InUse:       data.CountCategoryUsage(c.Kind, cat.Name),
			})
		}
		for _, d := range domain.DefaultCategories(c.Kind) {
			views = append(views, CategoryView{
				Name:        d.Name,
				DisplayName: domain.DisplayName(c.Kind, d.Name),
				Color:       d.Color,
				Default:     true,
				InUse:       data.CountCategoryUsage(c.Kind, d.Name),
			})
		}
	})
	return views, nil
}
