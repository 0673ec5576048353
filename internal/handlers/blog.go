package handlers

import (
	"errors"

	"hope-backend/internal/models"
	"hope-backend/internal/store"
	"hope-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog accepts a multipart form with title, content and up to
// five images in the "blog" field.
func CreateBlog(blogs store.BlogStore, saver *upload.Saver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := c.FormValue("title")
		content := c.FormValue("content")
		if title == "" || content == "" {
			return badRequest(c, msgRequiredField)
		}

		var urls []string
		if form, err := c.MultipartForm(); err == nil && form != nil {
			urls, err = saver.Save(form, "blog", 5)
			if err != nil {
				return uploadError(c, err)
			}
		}

		blog, err := blogs.CreateBlog(c.Context(), title, content, urls)
		if err != nil {
			return internalError(c, "Unable to create blog, please try again later!")
		}
		return success(c, fiber.StatusCreated, fiber.Map{
			"msg":  "Successfully created blog",
			"blog": blog,
		})
	}
}

func GetAllBlogs(blogs store.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := blogs.Blogs(c.Context())
		if err != nil {
			return internalError(c, "Unable to get all the blogs, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"blogs": all})
	}
}

func UpdateBlog(blogs store.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid blog id")
		}

		var req models.UpdateBlogRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		if req.Title == nil && req.Content == nil {
			return badRequest(c, msgRequiredField)
		}

		err := blogs.UpdateBlog(c.Context(), id, req.Title, req.Content)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c, "Unable to find the blog")
		}
		if err != nil {
			return internalError(c, "Unable to update the blog, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"msg": "Successfully updated the blog!"})
	}
}

func DeleteBlog(blogs store.BlogStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid blog id")
		}

		err := blogs.DeleteBlog(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c, "Unable to find the blog")
		}
		if err != nil {
			return internalError(c, "Unable to delete the blog, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"msg": "Successfully deleted blog"})
	}
}
