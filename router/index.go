package router

import (
	"travel_manager/handler"
	"travel_manager/middleware"
	"travel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", logger.New())
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)

	// Public site
	v1.Get("/home", handler.Home)

	packages := v1.Group("/packages", logger.New())
	packages.Get("/", handler.GetPackages)
	packages.Get("/:slug", handler.GetPackageBySlug)
	packages.Post("/:slug/reviews", validate.CreateReview("slug"), handler.CreateReview)

	bookings := v1.Group("/bookings", logger.New())
	bookings.Post("/:packageSlug", validate.CreateBooking("packageSlug"), handler.CreateBooking)
	bookings.Get("/success/:bookingCode", handler.GetBookingByCode)
	bookings.Get("/:bookingCode", handler.GetBookingByCode)

	contact := v1.Group("/contact", logger.New())
	contact.Post("/", validate.CreateContact(), handler.CreateContact)

	testimonial := v1.Group("/testimonials", logger.New())
	testimonial.Get("/", handler.GetTestimonials)
	testimonial.Post("/", validate.CreateTestimonial(), handler.CreateTestimonial)

	category := v1.Group("/categories", logger.New())
	category.Get("/", handler.GetCategories)

	page := v1.Group("/pages", logger.New())
	page.Get("/:slug", handler.GetPageBySlug)

	// Admin
	admin := v1.Group("/admin", logger.New())

	adminPackage := admin.Group("/packages")
	adminPackage.Get("/", middleware.Protected(), handler.GetAllPackages)
	adminPackage.Post("/", middleware.Protected(), validate.CreatePackage(), handler.CreatePackage)
	adminPackage.Put("/:packageId", middleware.Protected(), validate.EditPackage("packageId"), handler.EditPackage)
	adminPackage.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePackages)
	adminPackage.Patch("/availability/:value", middleware.Protected(), validate.Delete(), handler.SetPackagesAvailability)
	adminPackage.Post("/:id/gallery", middleware.Protected(), handler.UploadPackageGallery)

	adminReview := admin.Group("/reviews")
	adminReview.Patch("/approve", middleware.Protected(), validate.Delete(), handler.ApproveReviews)

	adminCategory := admin.Group("/categories")
	adminCategory.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	adminCategory.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	adminCategory.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategories)

	adminBooking := admin.Group("/bookings")
	adminBooking.Get("/", middleware.Protected(), handler.GetBookings)
	adminBooking.Patch("/status/:status", middleware.Protected(), validate.BulkBookingStatus("status"), handler.BulkBookingStatus)
	adminBooking.Patch("/:bookingCode/payment", middleware.Protected(), validate.UpdatePaymentStatus("bookingCode"), handler.UpdatePaymentStatus)

	adminInquiry := admin.Group("/inquiries")
	adminInquiry.Get("/", middleware.Protected(), handler.GetInquiries)
	adminInquiry.Patch("/status/:status", middleware.Protected(), validate.BulkInquiryStatus("status"), handler.BulkInquiryStatus)
	adminInquiry.Post("/:inquiryId/respond", middleware.Protected(), validate.RespondInquiry("inquiryId"), handler.RespondInquiry)

	adminTestimonial := admin.Group("/testimonials")
	adminTestimonial.Get("/", middleware.Protected(), handler.GetAllTestimonials)
	adminTestimonial.Put("/:testimonialId", middleware.Protected(), validate.EditTestimonial("testimonialId"), handler.EditTestimonial)
	adminTestimonial.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTestimonials)

	adminPage := admin.Group("/pages")
	adminPage.Get("/", middleware.Protected(), handler.GetPages)
	adminPage.Post("/", middleware.Protected(), validate.CreatePage(), handler.CreatePage)
	adminPage.Put("/:pageId", middleware.Protected(), validate.EditPage("pageId"), handler.EditPage)
	adminPage.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePages)

	adminSlider := admin.Group("/sliders")
	adminSlider.Get("/", middleware.Protected(), handler.GetSliders)
	adminSlider.Post("/", middleware.Protected(), validate.CreateSlider(), handler.CreateSlider)
	adminSlider.Put("/:sliderId", middleware.Protected(), validate.EditSlider("sliderId"), handler.EditSlider)
	adminSlider.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteSliders)

	adminSettings := admin.Group("/settings")
	adminSettings.Get("/", middleware.Protected(), handler.GetSiteSettings)
	adminSettings.Post("/", middleware.Protected(), validate.SaveSettings(), handler.CreateSiteSettings)
	adminSettings.Put("/", middleware.Protected(), validate.SaveSettings(), handler.UpdateSiteSettings)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
}
