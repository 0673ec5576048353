package handlers

import (
	"errors"

	"hope-backend/internal/store"
	"hope-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
)

// CreateStory accepts a multipart form with title, page_url and
// exactly one image in the "story" field.
func CreateStory(stories store.StoryStore, saver *upload.Saver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := c.FormValue("title")
		pageURL := c.FormValue("page_url")
		if title == "" || pageURL == "" {
			return badRequest(c, msgRequiredField)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return badRequest(c, "Story image is required")
		}
		urls, err := saver.Save(form, "story", 1)
		if err != nil {
			return uploadError(c, err)
		}
		if len(urls) == 0 {
			return badRequest(c, "Story image is required")
		}

		story, err := stories.CreateStory(c.Context(), title, pageURL, urls[0])
		if err != nil {
			return internalError(c, "Unable to create story, please try again later!")
		}
		return success(c, fiber.StatusCreated, fiber.Map{
			"msg":   "Successfully created story",
			"story": story,
		})
	}
}

func GetAllStories(stories store.StoryStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := stories.Stories(c.Context())
		if err != nil {
			return internalError(c, "Unable to get all the stories, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"stories": all})
	}
}

func DeleteStory(stories store.StoryStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c)
		if !ok {
			return badRequest(c, "Invalid story id")
		}

		err := stories.DeleteStory(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c, "Unable to find the story")
		}
		if err != nil {
			return internalError(c, "Unable to delete the story, please try again later!")
		}
		return success(c, fiber.StatusOK, fiber.Map{"msg": "Successfully deleted story"})
	}
}
