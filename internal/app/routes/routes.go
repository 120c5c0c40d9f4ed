package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	cohortController *controllers.CohortController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	libraryCardController *controllers.LibraryCardController,
	resultController *controllers.ResultController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:id", facultyController.GetFacultyByID)
		faculties.POST("", facultyController.CreateFaculty)
		faculties.PUT("/:id", facultyController.UpdateFaculty)
		faculties.DELETE("/:id", facultyController.DeleteFaculty)
	}

	cohorts := v1.Group("/cohorts")
	{
		cohorts.GET("", cohortController.GetAllCohorts)
		cohorts.GET("/:id", cohortController.GetCohortByID)
		cohorts.POST("", cohortController.CreateCohort)
		cohorts.PUT("/:id", cohortController.UpdateCohort)
		cohorts.DELETE("/:id", cohortController.DeleteCohort)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	libraryCards := v1.Group("/library-cards")
	{
		libraryCards.GET("", libraryCardController.GetAllLibraryCards)
		libraryCards.GET("/:id", libraryCardController.GetLibraryCardByID)
		libraryCards.POST("", libraryCardController.CreateLibraryCard)
		libraryCards.PUT("/:id", libraryCardController.UpdateLibraryCard)
		libraryCards.DELETE("/:id", libraryCardController.DeleteLibraryCard)
	}

	// Results are addressed by the (student, course) composite key.
	results := v1.Group("/results")
	{
		results.GET("", resultController.GetAllResults)
		results.GET("/grade/:grade", resultController.GetResultsByMinGrade)
		results.GET("/student/:studentId/course/:courseId", resultController.GetResult)
		results.POST("", resultController.CreateResult)
		results.PUT("/student/:studentId/course/:courseId", resultController.UpdateResult)
		results.DELETE("/student/:studentId/course/:courseId", resultController.DeleteResult)
	}
}
